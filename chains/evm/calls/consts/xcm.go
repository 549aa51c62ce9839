// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package consts

const XcmPrecompileAddress = "0x00000000000000000000000000000000000A0000"

const XcmABI = `
[
	{
		"inputs": [
			{
				"internalType": "bytes",
				"name": "message",
				"type": "bytes"
			},
			{
				"components": [
					{
						"internalType": "uint64",
						"name": "refTime",
						"type": "uint64"
					},
					{
						"internalType": "uint64",
						"name": "proofSize",
						"type": "uint64"
					}
				],
				"internalType": "struct IXcm.Weight",
				"name": "weight",
				"type": "tuple"
			}
		],
		"name": "execute",
		"outputs": [
			{
				"internalType": "bytes",
				"name": "",
				"type": "bytes"
			}
		],
		"stateMutability": "nonpayable",
		"type": "function"
	},
	{
		"inputs": [
			{
				"internalType": "bytes",
				"name": "destination",
				"type": "bytes"
			},
			{
				"internalType": "bytes",
				"name": "message",
				"type": "bytes"
			}
		],
		"name": "send",
		"outputs": [
			{
				"internalType": "bytes",
				"name": "",
				"type": "bytes"
			}
		],
		"stateMutability": "nonpayable",
		"type": "function"
	},
	{
		"inputs": [
			{
				"internalType": "bytes",
				"name": "message",
				"type": "bytes"
			}
		],
		"name": "weighMessage",
		"outputs": [
			{
				"components": [
					{
						"internalType": "uint64",
						"name": "refTime",
						"type": "uint64"
					},
					{
						"internalType": "uint64",
						"name": "proofSize",
						"type": "uint64"
					}
				],
				"internalType": "struct IXcm.Weight",
				"name": "weight",
				"type": "tuple"
			}
		],
		"stateMutability": "view",
		"type": "function"
	}
]
`

// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
)

type wrapper struct {
	Config RawConfig `mapstructure:"xcm"`
}

const EnvPrefix = "XCM"

func loadFromEnv() (RawConfig, error) {
	// load runner and watch config
	c := &wrapper{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		WeaklyTypedInput: true,
		Result:           c,
	})
	if err != nil {
		return RawConfig{}, err
	}
	err = decoder.Decode(loadENVToMap())
	if err != nil {
		return RawConfig{}, err
	}
	rawConfig := c.Config

	// load chain configs
	index := 1
	for {
		rawChainConfig := os.Getenv(fmt.Sprintf("%s_CHAIN_%d", EnvPrefix, index))
		if rawChainConfig == "" {
			break
		}
		var cc map[string]interface{}
		err = json.Unmarshal([]byte(rawChainConfig), &cc)
		if err != nil {
			return RawConfig{}, err
		}
		rawConfig.ChainConfigs = append(rawConfig.ChainConfigs, cc)
		index++
	}

	// load scenarios
	index = 1
	for {
		rawScenario := os.Getenv(fmt.Sprintf("%s_SCENARIO_%d", EnvPrefix, index))
		if rawScenario == "" {
			break
		}
		var s RawScenario
		err = json.Unmarshal([]byte(rawScenario), &s)
		if err != nil {
			return RawConfig{}, err
		}
		rawConfig.Scenarios = append(rawConfig.Scenarios, s)
		index++
	}

	return rawConfig, nil
}

func loadENVToMap() map[string]interface{} {
	structure := map[string]interface{}{}
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, EnvPrefix+"_") {
			pair := strings.SplitN(e, "=", 2)
			indexes := strings.Split(pair[0], "_")
			mountMap(structure, indexes, pair[1])
		}
	}
	return structure
}

func mountMap(m map[string]interface{}, i []string, v interface{}) {
	if len(i) > 1 {
		if _, ok := m[i[0]]; !ok {
			m[i[0]] = map[string]interface{}{}
		}
		asMap, ok := m[i[0]].(map[string]interface{})
		if !ok {
			return
		}
		mountMap(asMap, i[1:], v)
		v = asMap
	}
	m[i[0]] = v
}

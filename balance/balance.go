// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package balance

import (
	"context"
	"errors"
	"math/big"
	"sync"

	"github.com/ChainSafe/xcm-transfer/relayer/retry"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var errMissingReading = errors.New("class not read on both sides")

// Account is a watched account.
type Account struct {
	Name string
	ID   [32]byte
}

// Reading is the balance of one class. When Err is set the amount is unknown, never zero.
type Reading struct {
	Amount *big.Int
	Err    error
}

func (r Reading) Known() bool {
	return r.Err == nil && r.Amount != nil
}

// Snapshot maps a class label to its reading.
type Snapshot map[string]Reading

// Delta is a signed balance change. Value is nil when the change is unknown.
type Delta struct {
	Value *big.Int
	Cause error
}

func (d Delta) Known() bool {
	return d.Value != nil
}

// Diff maps a class label to its delta.
type Diff map[string]Delta

// Labels returns the class labels of the diff in a stable order.
func (d Diff) Labels() []string {
	labels := maps.Keys(d)
	slices.Sort(labels)
	return labels
}

// Comparator snapshots watched balance classes around an operation.
type Comparator struct {
	reader  StorageReader
	classes []Class
	policy  retry.Policy
}

func NewComparator(reader StorageReader, classes []Class, policy retry.Policy) *Comparator {
	return &Comparator{
		reader:  reader,
		classes: classes,
		policy:  policy,
	}
}

// Snapshot reads every watched class of account concurrently. A failing class is recorded
// as unknown and does not affect the others.
func (c *Comparator) Snapshot(ctx context.Context, account [32]byte) Snapshot {
	snapshot := make(Snapshot, len(c.classes))
	lock := sync.Mutex{}

	p := pool.New()
	for _, class := range c.classes {
		class := class
		p.Go(func() {
			amount, err := retry.Do(ctx, c.policy, "read "+class.Label(), func(ctx context.Context) (*big.Int, error) {
				return class.read(ctx, c.reader, account)
			})
			if err != nil {
				log.Warn().Err(err).Str("class", class.Label()).Msg("Balance unknown")
				amount = nil
			}

			lock.Lock()
			snapshot[class.Label()] = Reading{Amount: amount, Err: err}
			lock.Unlock()
		})
	}
	p.Wait()

	return snapshot
}

// CompareAround snapshots every account, runs operation and snapshots again. The diffs are
// returned together with the error of operation.
func (c *Comparator) CompareAround(ctx context.Context, accounts []Account, operation func(ctx context.Context) error) (map[Account]Diff, error) {
	before := c.snapshotAll(ctx, accounts)
	opErr := operation(ctx)
	after := c.snapshotAll(ctx, accounts)

	diffs := make(map[Account]Diff, len(accounts))
	for _, account := range accounts {
		diffs[account] = Compare(before[account], after[account])
	}
	return diffs, opErr
}

type accountSnapshot struct {
	account  Account
	snapshot Snapshot
}

func (c *Comparator) snapshotAll(ctx context.Context, accounts []Account) map[Account]Snapshot {
	p := pool.NewWithResults[accountSnapshot]()
	for _, account := range accounts {
		account := account
		p.Go(func() accountSnapshot {
			return accountSnapshot{account: account, snapshot: c.Snapshot(ctx, account.ID)}
		})
	}

	snapshots := make(map[Account]Snapshot, len(accounts))
	for _, r := range p.Wait() {
		snapshots[r.account] = r.snapshot
	}
	return snapshots
}

// Compare computes after minus before for every label present in either snapshot.
// A label unknown on either side yields an unknown delta.
func Compare(before, after Snapshot) Diff {
	diff := make(Diff)
	labels := append(maps.Keys(before), maps.Keys(after)...)
	for _, label := range labels {
		if _, ok := diff[label]; ok {
			continue
		}

		b, okBefore := before[label]
		a, okAfter := after[label]
		switch {
		case !okBefore || !okAfter:
			diff[label] = Delta{Cause: errMissingReading}
		case !b.Known():
			diff[label] = Delta{Cause: causeOf(b)}
		case !a.Known():
			diff[label] = Delta{Cause: causeOf(a)}
		default:
			diff[label] = Delta{Value: new(big.Int).Sub(a.Amount, b.Amount)}
		}
	}
	return diff
}

func causeOf(r Reading) error {
	if r.Err != nil {
		return r.Err
	}
	return errMissingReading
}

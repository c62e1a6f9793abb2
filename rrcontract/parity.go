package rrcontract

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// CheckParity reports keys present on only one side of c and b.
func CheckParity(c *Contract, b *Bound) error {
	if c == nil || b == nil {
		return fmt.Errorf("contract and bound theme are both required")
	}

	var missingValue, missingVar []string
	for _, k := range maps.Keys(c.Vars) {
		if _, ok := b.Values[k]; !ok {
			missingValue = append(missingValue, k)
		}
	}
	for _, k := range maps.Keys(b.Values) {
		if _, ok := c.Vars[k]; !ok {
			missingVar = append(missingVar, k)
		}
	}
	if len(missingValue) == 0 && len(missingVar) == 0 {
		if err := checkOrder("contract", c.Keys, c.Vars); err != nil {
			return err
		}
		if err := checkOrder("bound theme", b.Keys, b.Values); err != nil {
			return err
		}
		if !slices.Equal(c.Keys, b.Keys) {
			return fmt.Errorf("theme contract parity broken: contract and bound theme list keys in different orders")
		}
		return nil
	}

	slices.Sort(missingValue)
	slices.Sort(missingVar)
	var msgs []string
	if len(missingValue) > 0 {
		msgs = append(msgs, fmt.Sprintf("no bound value for %s", strings.Join(missingValue, ", ")))
	}
	if len(missingVar) > 0 {
		msgs = append(msgs, fmt.Sprintf("no contract entry for %s", strings.Join(missingVar, ", ")))
	}
	return fmt.Errorf("theme contract parity broken: %s", strings.Join(msgs, "; "))
}

// checkOrder verifies keys lists every key of m exactly once.
func checkOrder(side string, keys []string, m map[string]string) error {
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if _, ok := m[k]; !ok {
			return fmt.Errorf("%s key order lists %q which has no entry", side, k)
		}
		if _, ok := seen[k]; ok {
			return fmt.Errorf("%s key order lists %q twice", side, k)
		}
		seen[k] = struct{}{}
	}
	if len(seen) != len(m) {
		return fmt.Errorf("%s key order lists %d of %d keys", side, len(seen), len(m))
	}
	return nil
}

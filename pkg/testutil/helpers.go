// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/cosmoinvest/cosmo-calculators/internal/calculator"
	"github.com/cosmoinvest/cosmo-calculators/internal/form"
)

// FindSnapshot finds the most recent panel of a calculator in snaps.
// Returns nil if the calculator never reported.
func FindSnapshot(snaps []form.Snapshot, kind calculator.Kind) *form.Snapshot {
	for i := len(snaps) - 1; i >= 0; i-- {
		if snaps[i].Kind == kind {
			return &snaps[i]
		}
	}
	return nil
}

// Fill sets every field of fields on f, stopping at the first error.
func Fill(f *form.Form, fields form.Fields) error {
	for name, value := range fields {
		if _, err := f.SetField(name, value); err != nil {
			return err
		}
	}
	return nil
}

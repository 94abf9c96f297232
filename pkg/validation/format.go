// Package validation checks settings before any calculator or server starts.
package validation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cosmoinvest/cosmo-calculators/pkg/constants"
)

var outputFormats = []string{constants.OutputFormatPretty, constants.OutputFormatCSV}

// OutputFormats lists the renderings a result panel can be printed in.
func OutputFormats() []string {
	return slices.Clone(outputFormats)
}

// ValidateOutputFormat rejects a panel rendering other than pretty or csv.
// Matching is exact.
func ValidateOutputFormat(format string) error {
	if !slices.Contains(outputFormats, format) {
		return fmt.Errorf("unsupported output format %q (supported: %s)", format, strings.Join(outputFormats, ", "))
	}
	return nil
}

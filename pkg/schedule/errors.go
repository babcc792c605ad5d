// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package schedule

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInputSize is returned when fewer than two competitors are
	// provided, since no match can be formed.
	ErrInvalidInputSize = errors.New("at least two competitors are required")

	// ErrOddCompetitorCount is returned by RoundRobin for an odd number of
	// competitors. Byes are not supported.
	ErrOddCompetitorCount = errors.New("round-robin needs an even number of competitors")

	// ErrDuplicateIdentifier is returned when a competitor appears twice.
	ErrDuplicateIdentifier = errors.New("duplicate competitor")
)

// InputError describes a rejected competitor list. It unwraps to one of the
// sentinel errors above.
type InputError struct {
	Format string
	Size   int

	// Duplicate is the repeated identifier, set only for
	// ErrDuplicateIdentifier.
	Duplicate any

	Err error
}

func (err *InputError) Error() string {
	if errors.Is(err.Err, ErrDuplicateIdentifier) {
		return fmt.Sprintf("%s: %v: %v", err.Format, err.Err, err.Duplicate)
	}

	return fmt.Sprintf("%s: %v (got %d)", err.Format, err.Err, err.Size)
}

func (err *InputError) Unwrap() error {
	return err.Err
}

// validate checks the properties shared by every format: enough competitors
// and no repeated identifiers.
func validate[ID comparable](format string, ids []ID) error {
	if len(ids) < 2 {
		return &InputError{Format: format, Size: len(ids), Err: ErrInvalidInputSize}
	}

	seen := make(map[ID]struct{}, len(ids))
	for _, id := range ids {
		if _, found := seen[id]; found {
			return &InputError{
				Format:    format,
				Size:      len(ids),
				Duplicate: id,
				Err:       ErrDuplicateIdentifier,
			}
		}

		seen[id] = struct{}{}
	}

	return nil
}

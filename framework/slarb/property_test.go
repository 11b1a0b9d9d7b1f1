package slarb_test

import (
	"errors"
	"slices"
	"testing"

	"pgregory.net/rapid"

	"github.com/km-arc/slarb/framework/slarb"
)

func sortedCodes(keep func(int) bool) []int {
	var out []int
	for _, c := range slarb.KnownCodes() {
		if keep(c) {
			out = append(out, c)
		}
	}
	slices.Sort(out)
	return out
}

func violation(err error) slarb.Violation {
	var invalid *slarb.InvalidHTTPCodeError
	if errors.As(err, &invalid) {
		return invalid.Kind
	}
	return 0
}

func TestProperty_HTTPCodeConsistency(t *testing.T) {
	t.Run("success accepts every known code below 400", func(t *testing.T) {
		codes := sortedCodes(func(c int) bool { return c < 400 })
		rapid.Check(t, func(t *rapid.T) {
			code := rapid.SampledFrom(codes).Draw(t, "code")

			b, err := slarb.Success().WithHTTPCode(code)
			if err != nil {
				t.Fatalf("WithHTTPCode(%d): %v", code, err)
			}
			if got := b.Build().HTTPCode; got != code {
				t.Errorf("Build().HTTPCode = %d, want %d", got, code)
			}
		})
	})

	t.Run("success rejects every known code from 400", func(t *testing.T) {
		codes := sortedCodes(func(c int) bool { return c >= 400 })
		rapid.Check(t, func(t *rapid.T) {
			code := rapid.SampledFrom(codes).Draw(t, "code")

			_, err := slarb.Success().WithHTTPCode(code)
			if violation(err) != slarb.Mismatch {
				t.Errorf("WithHTTPCode(%d) = %v, want mismatch", code, err)
			}
		})
	})

	t.Run("error rejects every known code in [200, 400)", func(t *testing.T) {
		codes := sortedCodes(func(c int) bool { return c >= 200 && c < 400 })
		rapid.Check(t, func(t *rapid.T) {
			code := rapid.SampledFrom(codes).Draw(t, "code")

			b, err := slarb.Error().WithHTTPCode(code)
			if violation(err) != slarb.Mismatch {
				t.Errorf("WithHTTPCode(%d) = %v, want mismatch", code, err)
			}
			if b.HTTPCode() != 400 {
				t.Errorf("builder code changed to %d after rejection", b.HTTPCode())
			}
		})
	})

	t.Run("error accepts every known code below 200 or from 400", func(t *testing.T) {
		codes := sortedCodes(func(c int) bool { return c < 200 || c >= 400 })
		rapid.Check(t, func(t *rapid.T) {
			code := rapid.SampledFrom(codes).Draw(t, "code")

			b, err := slarb.Error().WithHTTPCode(code)
			if err != nil {
				t.Fatalf("WithHTTPCode(%d): %v", code, err)
			}
			if got := b.Build().HTTPCode; got != code {
				t.Errorf("Build().HTTPCode = %d, want %d", got, code)
			}
		})
	})

	t.Run("unknown codes are rejected for either status", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			code := rapid.IntRange(-1000, 2000).
				Filter(func(c int) bool { return !slarb.IsKnownCode(c) }).
				Draw(t, "code")
			status := rapid.Bool().Draw(t, "status")

			if got := violation(slarb.Validate(status, code)); got != slarb.UnknownCode {
				t.Errorf("Validate(%v, %d) violation = %v, want unknown code", status, code, got)
			}
		})
	})
}

func TestProperty_SettersIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		msg := rapid.String().Draw(t, "message")
		data := rapid.SliceOf(rapid.Int()).Draw(t, "data")
		b := slarb.Respond(rapid.Bool().Draw(t, "status"))

		once := b.WithMessage(msg).WithData(data).Build()
		twice := b.WithMessage(msg).WithMessage(msg).WithData(data).WithData(data).Build()

		if once.Message != twice.Message || once.Status != twice.Status || once.HTTPCode != twice.HTTPCode {
			t.Errorf("once %+v != twice %+v", once, twice)
		}
	})
}

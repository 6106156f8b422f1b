package cli

import (
	"strings"

	"github.com/alexanderramin/lite/internal/domain"
	"github.com/spf13/pflag"
)

// bucketFlag is a pflag.Value accepting day or night in any case.
type bucketFlag struct {
	value domain.Bucket
}

var _ pflag.Value = (*bucketFlag)(nil)

func (f *bucketFlag) String() string { return strings.ToLower(string(f.value)) }

func (f *bucketFlag) Set(s string) error {
	b, err := domain.ParseBucket(s)
	if err != nil {
		return err
	}
	f.value = b
	return nil
}

func (f *bucketFlag) Type() string { return "day|night" }

// contextFlag is a pflag.Value for the viewing context. "auto" leaves the
// choice to the configured clock policy.
type contextFlag struct {
	value *domain.ViewingContext
}

var _ pflag.Value = (*contextFlag)(nil)

func (f *contextFlag) String() string {
	if f.value == nil {
		return "auto"
	}
	return string(*f.value)
}

func (f *contextFlag) Set(s string) error {
	if strings.EqualFold(strings.TrimSpace(s), "auto") {
		f.value = nil
		return nil
	}
	c, err := domain.ParseViewingContext(s)
	if err != nil {
		return err
	}
	f.value = &c
	return nil
}

func (f *contextFlag) Type() string { return "auto|day|night" }

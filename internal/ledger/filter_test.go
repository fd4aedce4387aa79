package ledger

import (
	"testing"

	apperrors "github.com/livp123/blockledger/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileFilter_Empty(t *testing.T) {
	f, err := CompileFilter("   ")
	require.NoError(t, err)
	assert.Nil(t, f)

	// A nil filter matches everything
	ok, err := f.Match(event("2024/01/01 00:00:00", "10.0.0.1", "10.0.1.1", "x", "1"))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCompileFilter_Invalid(t *testing.T) {
	tests := []string{
		`Priority ==`,
		`Unknown == "1"`,
		`Priority`, // not a bool
	}
	for _, src := range tests {
		_, err := CompileFilter(src)
		assert.ErrorIs(t, err, apperrors.ErrInvalidFilter, "source %q", src)
	}
}

func TestFilter_Match(t *testing.T) {
	ev := event("2024/01/10 08:00:00", "10.1.2.3", "192.168.0.10", "Port scan detected", "2")

	tests := []struct {
		src  string
		want bool
	}{
		{`Priority == "2"`, true},
		{`Priority in ["1"]`, false},
		{`SourceIP startsWith "10."`, true},
		{`DestinationIP startsWith "10."`, false},
		{`Description contains "scan"`, true},
		{`Timestamp.Year() == 2024 && int(Timestamp.Month()) == 1`, true},
		{`Timestamp.Format("2006/01/02") == "2024/01/10"`, true},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			f, err := CompileFilter(tt.src)
			require.NoError(t, err)
			got, err := f.Match(ev)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

package cli

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/rtstart/internal/app"
	"github.com/vk/rtstart/internal/ctxlog"
)

func testContext(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return ctxlog.WithLogger(context.Background(), logger), buf
}

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name             string
		args             []string
		expectedSettings app.Settings
		expectErr        bool
	}{
		{
			name:             "no arguments keeps defaults",
			args:             nil,
			expectedSettings: app.Settings{IntervalSec: 0, IntervalMsec: 500, LogThresholdMsec: 1000, Priority: 90},
		},
		{
			name:             "single argument sets interval seconds",
			args:             []string{"5"},
			expectedSettings: app.Settings{IntervalSec: 5, IntervalMsec: 500, LogThresholdMsec: 1000, Priority: 90},
		},
		{
			name:             "two arguments",
			args:             []string{"1", "250"},
			expectedSettings: app.Settings{IntervalSec: 1, IntervalMsec: 250, LogThresholdMsec: 1000, Priority: 90},
		},
		{
			name:             "all four arguments",
			args:             []string{"1", "2", "3", "4"},
			expectedSettings: app.Settings{IntervalSec: 1, IntervalMsec: 2, LogThresholdMsec: 3, Priority: 4},
		},
		{
			name:             "negative numbers are values, not flags",
			args:             []string{"-5", "-1"},
			expectedSettings: app.Settings{IntervalSec: -5, IntervalMsec: -1, LogThresholdMsec: 1000, Priority: 90},
		},
		{
			name:             "non-numeric argument is coerced to zero",
			args:             []string{"abc", "", "12ms"},
			expectedSettings: app.Settings{IntervalSec: 0, IntervalMsec: 0, LogThresholdMsec: 12, Priority: 90},
		},
		{
			name:             "five arguments fail after assigning the first four",
			args:             []string{"1", "2", "3", "4", "5"},
			expectedSettings: app.Settings{IntervalSec: 1, IntervalMsec: 2, LogThresholdMsec: 3, Priority: 4},
			expectErr:        true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			ctx, _ := testContext(t)

			// --- Act ---
			settings, err := Parse(ctx, tc.args)

			// --- Assert ---
			if tc.expectErr {
				require.Error(t, err)
				var exitErr *ExitError
				require.True(t, errors.As(err, &exitErr), "error should be an *ExitError")
				assert.Equal(t, ExitCodeTooManyArgs, exitErr.Code)
				assert.ErrorIs(t, err, ErrTooManyArguments)
			} else {
				require.NoError(t, err)
			}
			if diff := cmp.Diff(tc.expectedSettings, settings); diff != "" {
				t.Errorf("settings mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_TooManyArgumentsMessage(t *testing.T) {
	t.Parallel()

	ctx, logs := testContext(t)

	_, err := Parse(ctx, []string{"1", "2", "3", "4", "5", "6"})

	require.Error(t, err)
	assert.Equal(t, "unsupported argument: expected at most 4 arguments, got 6", err.Error())
	assert.Contains(t, logs.String(), "Unsupported argument.")
	assert.Contains(t, logs.String(), "index=5")
}

func TestParse_WarnsOnCoercion(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	ctx, logs := testContext(t)

	// --- Act ---
	_, err := Parse(ctx, []string{"7", "x9"})

	// --- Assert ---
	require.NoError(t, err)
	out := logs.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "value=x9")
	assert.NotContains(t, out, "value=7 parsed", "a clean integer must not be reported as coerced")
}

func TestParse_Idempotent(t *testing.T) {
	t.Parallel()

	ctx, _ := testContext(t)
	args := []string{"3", "100", "2000", "50"}

	first, err1 := Parse(ctx, args)
	second, err2 := Parse(ctx, args)

	require.NoError(t, err1)
	require.NoError(t, err2)
	require.Equal(t, first, second)
}

func TestAtoi(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in        string
		want      int
		wantClean bool
	}{
		{in: "0", want: 0, wantClean: true},
		{in: "42", want: 42, wantClean: true},
		{in: "+42", want: 42, wantClean: true},
		{in: "-42", want: -42, wantClean: true},
		{in: "007", want: 7, wantClean: true},
		{in: "  15", want: 15, wantClean: false},
		{in: "\t-3", want: -3, wantClean: false},
		{in: "12abc", want: 12, wantClean: false},
		{in: "3.9", want: 3, wantClean: false},
		{in: "abc", want: 0, wantClean: false},
		{in: "", want: 0, wantClean: false},
		{in: "-", want: 0, wantClean: false},
		{in: "+-1", want: 0, wantClean: false},
		{in: "2147483647", want: math.MaxInt32, wantClean: true},
		{in: "-2147483648", want: math.MinInt32, wantClean: true},
		{in: "2147483648", want: math.MaxInt32, wantClean: false},
		{in: "-99999999999999999999", want: math.MinInt32, wantClean: false},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, clean := Atoi(tc.in)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantClean, clean)
		})
	}
}

package main

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type calcArgs struct {
	CfgPath  string
	LogLevel string
	NoHelp   bool
}

// recorder is an Applicator that records its arguments.
type recorder struct {
	got    calcArgs
	called bool
}

func (r *recorder) Calculate(_ context.Context, cfgPath, logLevel string, noHelp bool) error {
	r.called = true
	r.got = calcArgs{cfgPath, logLevel, noHelp}
	return nil
}

func TestBuildCLI(t *testing.T) {

	tests := []struct {
		name string
		args []string
		want calcArgs
	}{
		{
			name: "no flags",
			args: []string{"calc"},
			want: calcArgs{},
		},
		{
			name: "all flags",
			args: []string{"calc", "--config", "calc.yaml", "--log-level", "debug", "--no-help"},
			want: calcArgs{CfgPath: "calc.yaml", LogLevel: "debug", NoHelp: true},
		},
		{
			name: "short config",
			args: []string{"calc", "-c", "other.yaml"},
			want: calcArgs{CfgPath: "other.yaml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{}
			if err := BuildCLI(r).Run(context.Background(), tt.args); err != nil {
				t.Fatal(err)
			}
			if !r.called {
				t.Fatal("application was not called")
			}
			if diff := cmp.Diff(tt.want, r.got); diff != "" {
				t.Errorf("arguments mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

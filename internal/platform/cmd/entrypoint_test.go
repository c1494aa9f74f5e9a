package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"
	"time"
)

type testConfig struct {
	Address string        `env:"CMD_TEST_ADDRESS" envDefault:"127.0.0.1:8080"`
	Timeout time.Duration `env:"CMD_TEST_TIMEOUT" envDefault:"3s"`
}

func TestFlagsOverrideEnvDefaults(t *testing.T) {
	t.Setenv("CMD_TEST_ADDRESS", "env:9000")

	var cfg testConfig
	if err := ParseConfig(&cfg); err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.StringVar(&cfg.Address, "address", cfg.Address, "address")
	if err := ParseArgs(fs, []string{"-address", "flag:9001"}); err != nil {
		t.Fatalf("ParseArgs() error = %v", err)
	}
	if cfg.Address != "flag:9001" || cfg.Timeout != 3*time.Second {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestParseRejectsNilInputs(t *testing.T) {
	if err := ParseConfig[testConfig](nil); err == nil {
		t.Fatal("ParseConfig(nil) error = nil")
	}
	if err := ParseArgs(nil, nil); err == nil {
		t.Fatal("ParseArgs(nil) error = nil")
	}
}

func TestRunValidatesService(t *testing.T) {
	noop := func(context.Context) error { return nil }
	if err := Run(context.Background(), Service{Name: " "}, noop); err == nil {
		t.Fatal("expected missing service name error")
	}
	if err := Run(context.Background(), Service{Name: ServiceWeb}, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}

func TestRunReturnsRunError(t *testing.T) {
	t.Setenv("GRATITUDE_OTEL_ENDPOINT", "")
	want := errors.New("boom")

	called := false
	err := Run(context.Background(), Service{Name: ServiceWeb}, func(context.Context) error {
		called = true
		return want
	})
	if !called || !errors.Is(err, want) {
		t.Fatalf("Run() called=%t err=%v, want %v", called, err, want)
	}
}

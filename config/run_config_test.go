package config

import (
	"path/filepath"
	"testing"

	"github.com/vanderheijden86/hugegraph/pregel"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Load() = %+v, want DefaultConfig()", cfg)
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	want := RunConfig{
		MaxIterations:  50,
		Concurrency:    4,
		Partitioning:   "degree",
		IsAsynchronous: true,
		TrackSender:    true,
	}
	if err := Save(want, path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestSchedulerConfigTranslatesPartitioning(t *testing.T) {
	cases := map[string]pregel.Partitioning{
		"range":  pregel.Range,
		"degree": pregel.Degree,
		"auto":   pregel.Auto,
		"":       pregel.Range,
	}
	for name, want := range cases {
		cfg := RunConfig{Partitioning: name, MaxIterations: 10, Concurrency: 2}
		sc := cfg.SchedulerConfig()
		if sc.Partitioning != want {
			t.Errorf("partitioning %q -> %v, want %v", name, sc.Partitioning, want)
		}
	}
}

func TestSchedulerConfigAppliesMinimums(t *testing.T) {
	sc := RunConfig{MaxIterations: 0, Concurrency: 0}.SchedulerConfig()
	if sc.Concurrency < 1 {
		t.Errorf("Concurrency = %d, want >= 1", sc.Concurrency)
	}
	if sc.MaxIterations < 1 {
		t.Errorf("MaxIterations = %d, want >= 1", sc.MaxIterations)
	}
}

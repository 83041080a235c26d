package planner

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kirizan/kitt-sub000/pkg/models"
)

type fakeDiscovery struct {
	repos map[string][]RepoFile
	tags  map[string][]string
	err   error
}

func (f *fakeDiscovery) ListRepoFiles(_ context.Context, repo string) ([]RepoFile, error) {
	if f.err != nil {
		return nil, f.err
	}
	files, ok := f.repos[repo]
	if !ok {
		return nil, errors.New("repo not found")
	}
	return files, nil
}

func (f *fakeDiscovery) ListOllamaTags(_ context.Context, model string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	tags, ok := f.tags[model]
	if !ok {
		return nil, errors.New("model not found")
	}
	return tags, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

const gb = int64(1024 * 1024 * 1024)

func ggufRepo() []RepoFile {
	return []RepoFile{
		{Path: "llama-8b-Q2_K.gguf", SizeBytes: 3 * gb},
		{Path: "llama-8b-Q4_K_M.gguf", SizeBytes: 5 * gb},
		{Path: "llama-8b-Q8_0.gguf", SizeBytes: 9 * gb},
	}
}

func TestPlanExpandsGGUFQuantsAcrossBenchmarks(t *testing.T) {
	p := New(&fakeDiscovery{repos: map[string][]RepoFile{"org/llama-gguf": ggufRepo()}}, testLogger())

	cfg := &models.CampaignConfig{
		Name:       "matrix",
		Models:     []models.ModelSpec{{Name: "llama-8b", Params: "8B", GGUFRepo: "org/llama-gguf"}},
		Engines:    []models.EngineSpec{{Name: "llama_cpp"}},
		Benchmarks: []string{"throughput", "latency"},
	}

	specs, err := p.Plan(context.Background(), cfg)
	require.NoError(t, err)
	// 3 quants x 2 benchmarks
	require.Len(t, specs, 6)

	for _, s := range specs {
		assert.False(t, s.Skip)
		assert.Equal(t, "org/llama-gguf", s.ModelRef)
		assert.Equal(t, "docker", s.EngineMode)
	}

	// Ordered by estimated size ascending, benchmark name breaking ties.
	assert.Equal(t, "Q2_K", specs[0].Quant)
	assert.Equal(t, "latency", specs[0].BenchmarkName)
	assert.Equal(t, "Q2_K", specs[1].Quant)
	assert.Equal(t, "throughput", specs[1].BenchmarkName)
	assert.Equal(t, "Q8_0", specs[5].Quant)
}

func TestPlanIsDeterministic(t *testing.T) {
	disc := &fakeDiscovery{repos: map[string][]RepoFile{"org/llama-gguf": ggufRepo()}}
	p := New(disc, testLogger())

	cfg := &models.CampaignConfig{
		Name:    "repeat",
		Models:  []models.ModelSpec{{Name: "llama-8b", Params: "8B", GGUFRepo: "org/llama-gguf"}},
		Engines: []models.EngineSpec{{Name: "llama_cpp"}},
	}

	first, err := p.Plan(context.Background(), cfg)
	require.NoError(t, err)
	second, err := p.Plan(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPlanAppliesQuantFilter(t *testing.T) {
	p := New(&fakeDiscovery{repos: map[string][]RepoFile{"org/llama-gguf": ggufRepo()}}, testLogger())

	cfg := &models.CampaignConfig{
		Name:    "filtered",
		Models:  []models.ModelSpec{{Name: "llama-8b", GGUFRepo: "org/llama-gguf"}},
		Engines: []models.EngineSpec{{Name: "llama_cpp"}},
		QuantFilter: models.QuantFilter{
			SkipPatterns: []string{"Q2*"},
			IncludeOnly:  []string{"Q4_K_M", "Q2_K"},
		},
	}

	specs, err := p.Plan(context.Background(), cfg)
	require.NoError(t, err)
	// Skip subtracts Q2_K before include-only intersects.
	require.Len(t, specs, 1)
	assert.Equal(t, "Q4_K_M", specs[0].Quant)
}

func TestPlanSkipsOversizedRuns(t *testing.T) {
	p := New(&fakeDiscovery{repos: map[string][]RepoFile{"org/llama-gguf": ggufRepo()}}, testLogger())

	cfg := &models.CampaignConfig{
		Name:           "sized",
		Models:         []models.ModelSpec{{Name: "llama-8b", GGUFRepo: "org/llama-gguf"}},
		Engines:        []models.EngineSpec{{Name: "llama_cpp"}},
		ResourceLimits: models.ResourceLimits{MaxModelSizeGB: 6},
	}

	specs, err := p.Plan(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, specs, 3)

	byQuant := map[string]RunSpec{}
	for _, s := range specs {
		byQuant[s.Quant] = s
	}
	assert.False(t, byQuant["Q2_K"].Skip)
	assert.False(t, byQuant["Q4_K_M"].Skip)
	assert.True(t, byQuant["Q8_0"].Skip)
	assert.Equal(t, SkipReasonSize, byQuant["Q8_0"].SkipReason)
}

func TestPlanSafetensorsPlaceholderQuant(t *testing.T) {
	p := New(&fakeDiscovery{}, testLogger())

	cfg := &models.CampaignConfig{
		Name:    "st",
		Models:  []models.ModelSpec{{Name: "llama-8b", Params: "8B", SafetensorsRepo: "org/llama"}},
		Engines: []models.EngineSpec{{Name: "vllm", Mode: "docker"}},
	}

	specs, err := p.Plan(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.Equal(t, "bf16", specs[0].Quant)
	assert.Equal(t, "org/llama", specs[0].ModelRef)
	assert.InDelta(t, 17.6, specs[0].EstimatedSizeGB, 0.01)
}

func TestPlanIncompatiblePairBecomesSkip(t *testing.T) {
	p := New(&fakeDiscovery{}, testLogger())

	// GGUF-only model with a safetensors engine: no usable reference.
	cfg := &models.CampaignConfig{
		Name:    "mismatch",
		Models:  []models.ModelSpec{{Name: "llama-8b", GGUFRepo: "org/llama-gguf"}},
		Engines: []models.EngineSpec{{Name: "vllm"}},
	}

	specs, err := p.Plan(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.True(t, specs[0].Skip)
	assert.Equal(t, SkipReasonIncompatible, specs[0].SkipReason)
}

func TestPlanDiscoveryFailureBecomesSkipNotError(t *testing.T) {
	p := New(&fakeDiscovery{err: errors.New("registry down")}, testLogger())

	cfg := &models.CampaignConfig{
		Name:    "down",
		Models:  []models.ModelSpec{{Name: "llama-8b", GGUFRepo: "org/llama-gguf"}},
		Engines: []models.EngineSpec{{Name: "llama_cpp"}},
	}

	specs, err := p.Plan(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.True(t, specs[0].Skip)
	assert.Equal(t, SkipReasonDiscoveryFailed, specs[0].SkipReason)
}

func TestPlanOllamaPinnedTag(t *testing.T) {
	p := New(&fakeDiscovery{}, testLogger())

	cfg := &models.CampaignConfig{
		Name:    "pinned",
		Models:  []models.ModelSpec{{Name: "llama3.1", Params: "8B", OllamaTag: "llama3.1:8b-instruct-q4_K_M"}},
		Engines: []models.EngineSpec{{Name: "ollama"}},
	}

	specs, err := p.Plan(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.Equal(t, "llama3.1:8b-instruct-q4_K_M", specs[0].ModelRef)
	assert.Equal(t, "8b-instruct-q4_K_M", specs[0].Quant)
}

func TestPlanOllamaExpandsTags(t *testing.T) {
	p := New(&fakeDiscovery{tags: map[string][]string{
		"llama3.1": {"8b-instruct-q4_K_M", "8b-instruct-fp16", "latest"},
	}}, testLogger())

	cfg := &models.CampaignConfig{
		Name:    "tags",
		Models:  []models.ModelSpec{{Name: "llama3.1", Params: "8B", OllamaTag: "llama3.1"}},
		Engines: []models.EngineSpec{{Name: "ollama"}},
		QuantFilter: models.QuantFilter{
			SkipPatterns: []string{"latest"},
		},
	}

	specs, err := p.Plan(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, specs, 2)
	refs := []string{specs[0].ModelRef, specs[1].ModelRef}
	assert.Contains(t, refs, "llama3.1:8b-instruct-q4_K_M")
	assert.Contains(t, refs, "llama3.1:8b-instruct-fp16")
}

func TestPlanRejectsInvalidConfig(t *testing.T) {
	p := New(&fakeDiscovery{}, testLogger())

	_, err := p.Plan(context.Background(), &models.CampaignConfig{Name: "empty"})
	require.Error(t, err)
}

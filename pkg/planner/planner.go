// Package planner expands a campaign configuration into the ordered list
// of planned runs: it discovers available model artifacts per engine,
// applies quantisation filters and size limits, and produces a
// deterministic execution order (smallest models first).
package planner

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/Kirizan/kitt-sub000/pkg/models"
)

// Skip reasons recorded on runs the planner excludes up front.
const (
	SkipReasonSize            = "size"
	SkipReasonIncompatible    = "incompatible"
	SkipReasonDiscoveryFailed = "discovery_failed"
)

// Format is a model artifact format an engine can consume.
type Format string

// Known artifact formats.
const (
	FormatSafetensors Format = "safetensors"
	FormatGGUF        Format = "gguf"
	FormatOllama      Format = "ollama"
)

// engineFormats maps engine names to the artifact format they load.
// Unknown engines plan as incompatible skips rather than hard errors.
var engineFormats = map[string]Format{
	"vllm":      FormatSafetensors,
	"tgi":       FormatSafetensors,
	"llama_cpp": FormatGGUF,
	"llamacpp":  FormatGGUF,
	"exllamav2": FormatGGUF,
	"ollama":    FormatOllama,
}

// RunSpec is one planned run before it is persisted to the ledger.
// Specs are emitted in execution order; the slice index is the plan index.
type RunSpec struct {
	ModelName       string
	ModelRef        string
	EngineName      string
	EngineMode      string
	SuiteName       string
	BenchmarkName   string
	Quant           string
	EstimatedSizeGB float64
	Skip            bool
	SkipReason      string
}

// Key returns the uniqueness key used for idempotent ledger inserts.
func (r RunSpec) Key() string {
	return strings.Join([]string{r.ModelRef, r.EngineName, r.Quant, r.BenchmarkName}, "|")
}

// Planner expands campaign configurations into run plans.
type Planner struct {
	discovery ModelDiscovery
	logger    *slog.Logger
}

// New creates a Planner.
func New(discovery ModelDiscovery, logger *slog.Logger) *Planner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Planner{discovery: discovery, logger: logger}
}

// Plan expands the config into an ordered list of run specs. The same
// config always produces the same plan in the same order. Discovery
// failures and incompatible model/engine pairs become skipped specs, not
// errors; Plan fails only when the config itself is invalid.
func (p *Planner) Plan(ctx context.Context, cfg *models.CampaignConfig) ([]RunSpec, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	benchmarks := cfg.BenchmarkNames()
	var specs []RunSpec

	for _, model := range cfg.Models {
		for _, engine := range cfg.Engines {
			variants := p.expandPair(ctx, model, engine, cfg)
			for _, v := range variants {
				for _, bench := range benchmarks {
					s := v
					s.BenchmarkName = bench
					specs = append(specs, s)
				}
			}
		}
	}

	sortSpecs(specs)

	p.logger.Info("campaign plan expanded",
		slog.String("campaign", cfg.Name),
		slog.Int("total_runs", len(specs)),
		slog.Int("pre_skipped", countSkipped(specs)))
	return specs, nil
}

// variant is one (model, engine, quant) combination before the benchmark
// cross product.
func (p *Planner) expandPair(ctx context.Context, model models.ModelSpec, engine models.EngineSpec, cfg *models.CampaignConfig) []RunSpec {
	base := RunSpec{
		ModelName:  model.Name,
		EngineName: engine.Name,
		EngineMode: engineMode(engine),
		SuiteName:  engine.Suite,
	}

	format, known := engineFormats[strings.ToLower(engine.Name)]
	if !known {
		p.logger.Warn("unknown engine, planning as incompatible",
			slog.String("engine", engine.Name), slog.String("model", model.Name))
		return []RunSpec{skipped(base, model.Name, "none", SkipReasonIncompatible)}
	}

	paramsB := ParseParams(model.Params)

	switch format {
	case FormatSafetensors:
		if model.SafetensorsRepo == "" {
			return []RunSpec{skipped(base, model.Name, "none", SkipReasonIncompatible)}
		}
		s := base
		s.ModelRef = model.SafetensorsRepo
		s.Quant = "bf16"
		s.EstimatedSizeGB = model.EstimatedSizeGB
		if s.EstimatedSizeGB == 0 {
			s.EstimatedSizeGB = EstimateQuantSizeGB(paramsB, "bf16")
		}
		return []RunSpec{p.applySizeLimit(s, cfg)}

	case FormatGGUF:
		if model.GGUFRepo == "" {
			return []RunSpec{skipped(base, model.Name, "none", SkipReasonIncompatible)}
		}
		files, err := p.discovery.ListRepoFiles(ctx, model.GGUFRepo)
		if err != nil {
			p.logger.Warn("gguf discovery failed",
				slog.String("repo", model.GGUFRepo), slog.Any("error", err))
			return []RunSpec{skipped(base, model.GGUFRepo, "none", SkipReasonDiscoveryFailed)}
		}
		quants := FilterQuants(GroupQuants(files), cfg.QuantFilter.SkipPatterns, cfg.QuantFilter.IncludeOnly)
		if len(quants) == 0 {
			return []RunSpec{skipped(base, model.GGUFRepo, "none", SkipReasonIncompatible)}
		}
		specs := make([]RunSpec, 0, len(quants))
		for _, q := range quants {
			s := base
			s.ModelRef = model.GGUFRepo
			s.Quant = q.Name
			s.EstimatedSizeGB = bytesToGB(q.TotalSizeBytes)
			if s.EstimatedSizeGB == 0 {
				s.EstimatedSizeGB = EstimateQuantSizeGB(paramsB, q.Name)
			}
			specs = append(specs, p.applySizeLimit(s, cfg))
		}
		return specs

	case FormatOllama:
		if model.OllamaTag == "" {
			return []RunSpec{skipped(base, model.Name, "none", SkipReasonIncompatible)}
		}
		// A fully qualified tag like "llama3.1:8b-instruct-q4_K_M" pins a
		// single variant; a bare model name expands to every published tag.
		if name, tag, ok := strings.Cut(model.OllamaTag, ":"); ok {
			s := base
			s.ModelRef = name + ":" + tag
			s.Quant = tag
			s.EstimatedSizeGB = EstimateQuantSizeGB(paramsB, tag)
			if s.EstimatedSizeGB == 0 {
				s.EstimatedSizeGB = model.EstimatedSizeGB
			}
			return []RunSpec{p.applySizeLimit(s, cfg)}
		}
		tags, err := p.discovery.ListOllamaTags(ctx, model.OllamaTag)
		if err != nil {
			p.logger.Warn("ollama tag discovery failed",
				slog.String("model", model.OllamaTag), slog.Any("error", err))
			return []RunSpec{skipped(base, model.OllamaTag, "none", SkipReasonDiscoveryFailed)}
		}
		kept := filterTags(tags, cfg.QuantFilter)
		if len(kept) == 0 {
			return []RunSpec{skipped(base, model.OllamaTag, "none", SkipReasonIncompatible)}
		}
		specs := make([]RunSpec, 0, len(kept))
		for _, tag := range kept {
			s := base
			s.ModelRef = model.OllamaTag + ":" + tag
			s.Quant = tag
			s.EstimatedSizeGB = EstimateQuantSizeGB(paramsB, tag)
			specs = append(specs, p.applySizeLimit(s, cfg))
		}
		return specs
	}

	return []RunSpec{skipped(base, model.Name, "none", SkipReasonIncompatible)}
}

// applySizeLimit marks the spec skipped when its estimated size exceeds
// the campaign limit. A zero limit disables the check; an unknown size
// (zero estimate) always passes.
func (p *Planner) applySizeLimit(s RunSpec, cfg *models.CampaignConfig) RunSpec {
	limit := cfg.ResourceLimits.MaxModelSizeGB
	if limit > 0 && s.EstimatedSizeGB > limit {
		s.Skip = true
		s.SkipReason = SkipReasonSize
		p.logger.Debug("run pre-skipped by size limit",
			slog.String("model", s.ModelName),
			slog.String("quant", s.Quant),
			slog.Float64("estimated_gb", s.EstimatedSizeGB),
			slog.Float64("limit_gb", limit))
	}
	return s
}

func skipped(base RunSpec, ref, quant, reason string) RunSpec {
	base.ModelRef = ref
	base.Quant = quant
	base.Skip = true
	base.SkipReason = reason
	return base
}

func engineMode(e models.EngineSpec) string {
	if e.Mode == "" {
		return "docker"
	}
	return e.Mode
}

func filterTags(tags []string, filter models.QuantFilter) []string {
	kept := make([]string, 0, len(tags))
	for _, tag := range tags {
		if len(filter.SkipPatterns) > 0 && matchesAny(tag, filter.SkipPatterns) {
			continue
		}
		if len(filter.IncludeOnly) > 0 && !matchesAny(tag, filter.IncludeOnly) {
			continue
		}
		kept = append(kept, tag)
	}
	return kept
}

// sortSpecs orders the plan: smallest estimated size first so cheap runs
// produce signal early, with name fields breaking ties deterministically.
func sortSpecs(specs []RunSpec) {
	sort.SliceStable(specs, func(i, j int) bool {
		a, b := specs[i], specs[j]
		if a.EstimatedSizeGB != b.EstimatedSizeGB {
			return a.EstimatedSizeGB < b.EstimatedSizeGB
		}
		if a.ModelName != b.ModelName {
			return a.ModelName < b.ModelName
		}
		if a.EngineName != b.EngineName {
			return a.EngineName < b.EngineName
		}
		if a.Quant != b.Quant {
			return a.Quant < b.Quant
		}
		return a.BenchmarkName < b.BenchmarkName
	})
}

func countSkipped(specs []RunSpec) int {
	n := 0
	for _, s := range specs {
		if s.Skip {
			n++
		}
	}
	return n
}

func bytesToGB(b int64) float64 {
	if b <= 0 {
		return 0
	}
	return round1(float64(b) / (1024 * 1024 * 1024))
}

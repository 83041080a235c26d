package planner

import (
	"path"
	"regexp"
	"sort"
	"strings"
)

// quantPattern matches common GGUF quantisation names: Q2_K through Q8_0,
// IQ1_S through IQ4_XS, FP16, BF16, F32, and repacking variants like
// Q4_0_4_4, Q4_0_4_8, Q4_0_8_8.
var quantPattern = regexp.MustCompile(
	`(IQ[1-4]_[A-Za-z]+|[Qq][2-8]_[Kk0](?:_[SMLsml])?(?:_[48]_[48])?|[Ff][Pp]16|[Bb][Ff]16|[Ff]32)`,
)

// shardPattern matches shard suffixes like -00001-of-00002.gguf.
var shardPattern = regexp.MustCompile(`-(\d{5})-of-(\d{5})\.gguf$`)

// QuantInfo describes one quantisation variant of a GGUF repo.
// Multi-shard files are grouped into a single logical quant.
type QuantInfo struct {
	Name           string
	Files          []string
	TotalSizeBytes int64
}

// IsSharded reports whether the quant spans multiple files.
func (q QuantInfo) IsSharded() bool {
	return len(q.Files) > 1
}

// PrimaryFile returns the first file (or first shard) for loading.
func (q QuantInfo) PrimaryFile() string {
	if len(q.Files) == 0 {
		return ""
	}
	return q.Files[0]
}

// ExtractQuantName extracts the quantisation token from a GGUF filename.
// It always operates on the filename part only, never directory components.
//
//	Meta-Llama-3.1-8B-Instruct-Q4_K_M.gguf -> Q4_K_M
//	model-IQ4_XS.gguf                      -> IQ4_XS
//
// Falls back to the full stem when no token matches.
func ExtractQuantName(filename string) string {
	name := path.Base(filename)
	// Strip the .gguf extension explicitly: names with dots like
	// "Llama-3.3-70B-Q4_K_M" break naive extension handling.
	if strings.HasSuffix(strings.ToLower(name), ".gguf") {
		name = name[:len(name)-5]
	}
	if m := quantPattern.FindString(name); m != "" {
		return m
	}
	return name
}

// GroupQuants groups a repo's GGUF file listing into logical quants,
// collapsing shards. The result is sorted by quant name for determinism.
func GroupQuants(files []RepoFile) []QuantInfo {
	groups := make(map[string]*QuantInfo)

	for _, f := range files {
		if !strings.HasSuffix(strings.ToLower(f.Path), ".gguf") {
			continue
		}
		filename := path.Base(f.Path)

		var quantName string
		if shardPattern.MatchString(filename) {
			base := shardPattern.ReplaceAllString(filename, "")
			quantName = ExtractQuantName(base)
		} else {
			quantName = ExtractQuantName(filename)
		}

		g, ok := groups[quantName]
		if !ok {
			g = &QuantInfo{Name: quantName}
			groups[quantName] = g
		}
		g.Files = append(g.Files, f.Path)
		g.TotalSizeBytes += f.SizeBytes
	}

	quants := make([]QuantInfo, 0, len(groups))
	for _, g := range groups {
		sort.Strings(g.Files)
		quants = append(quants, *g)
	}
	sort.Slice(quants, func(i, j int) bool { return quants[i].Name < quants[j].Name })
	return quants
}

// FilterQuants applies the quant filter: skip patterns subtract first,
// then include-only intersects. Patterns are shell globs over quant names.
func FilterQuants(quants []QuantInfo, skipPatterns, includeOnly []string) []QuantInfo {
	result := quants

	if len(skipPatterns) > 0 {
		kept := result[:0:0]
		for _, q := range result {
			if !matchesAny(q.Name, skipPatterns) {
				kept = append(kept, q)
			}
		}
		result = kept
	}

	if len(includeOnly) > 0 {
		kept := result[:0:0]
		for _, q := range result {
			if matchesAny(q.Name, includeOnly) {
				kept = append(kept, q)
			}
		}
		result = kept
	}

	return result
}

func matchesAny(name string, patterns []string) bool {
	for _, pat := range patterns {
		if ok, err := path.Match(pat, name); err == nil && ok {
			return true
		}
	}
	return false
}

package planner

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// quantBPP maps quantisation names to approximate bytes-per-parameter.
// Values include ~10% overhead for metadata, embeddings, etc.
var quantBPP = map[string]float64{
	"f32":       4.4,
	"fp16":      2.2,
	"bf16":      2.2,
	"q8_0":      1.1,
	"q6_k":      0.85,
	"q5_k_m":    0.72,
	"q5_k_s":    0.72,
	"q5_k_l":    0.72,
	"q5_0":      0.72,
	"q5_1":      0.72,
	"q4_k_m":    0.63,
	"q4_k_s":    0.59,
	"q4_k_l":    0.63,
	"q4_0":      0.59,
	"q4_0_4_4":  0.59,
	"q4_0_4_8":  0.59,
	"q4_0_8_8":  0.59,
	"q4_1":      0.63,
	"q3_k_m":    0.50,
	"q3_k_s":    0.46,
	"q3_k_l":    0.53,
	"q2_k":      0.42,
	"iq4_xs":    0.57,
	"iq4_nl":    0.59,
	"iq3_m":     0.45,
	"iq3_s":     0.43,
	"iq3_xs":    0.42,
	"iq3_xxs":   0.40,
	"iq2_m":     0.34,
	"iq2_s":     0.33,
	"iq2_xs":    0.32,
	"iq2_xxs":   0.31,
	"iq1_m":     0.26,
	"iq1_s":     0.24,
}

var paramsRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*[Bb]`)

// ParseParams parses a parameter-count string into billions:
// "8B" -> 8.0, "1.5B" -> 1.5, "" -> 0.
func ParseParams(s string) float64 {
	if s == "" {
		return 0
	}
	m := paramsRe.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	return v
}

// EstimateQuantSizeGB estimates loaded model size in GB from a parameter
// count (in billions) and a quantisation name. Returns 0 when estimation
// is not possible.
func EstimateQuantSizeGB(paramsB float64, quant string) float64 {
	if paramsB <= 0 {
		return 0
	}

	q := strings.ToLower(strings.TrimSpace(quant))

	if bpp, ok := quantBPP[q]; ok {
		return round1(paramsB * bpp)
	}

	// Ollama tag suffixes like "70b-instruct-fp16".
	for _, suffix := range []string{"fp16", "bf16", "f32", "f16"} {
		if strings.HasSuffix(q, suffix) {
			if bpp, ok := quantBPP[suffix]; ok {
				return round1(paramsB * bpp)
			}
		}
	}

	// Substring match against known quants, longest names first, so
	// "q4_k_m" wins over "q4_k" style collisions.
	names := make([]string, 0, len(quantBPP))
	for name := range quantBPP {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	for _, name := range names {
		if strings.Contains(q, name) {
			return round1(paramsB * quantBPP[name])
		}
	}

	return 0
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

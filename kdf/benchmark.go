package kdf

import (
	"runtime"
	"time"
)

// DefaultBenchmarkIterations is the number of derivations [Benchmark] times
// per algorithm when the caller passes zero.
const DefaultBenchmarkIterations = 10

// benchmarkKeyLength is the output size derived during benchmarking.
const benchmarkKeyLength = 32

// BenchmarkResult captures the measured cost of one algorithm.
type BenchmarkResult struct {
	Algorithm Algorithm

	// AvgTime, MinTime and MaxTime summarise the wall-clock cost of a
	// single derivation across the measured iterations.
	AvgTime time.Duration
	MinTime time.Duration
	MaxTime time.Duration

	// AvgAllocKB is the average heap allocation per derivation in KiB. For
	// memory-hard algorithms this approximates the memory cost an attacker
	// must pay per guess.
	AvgAllocKB uint64

	// Available is false when the algorithm could not be benchmarked;
	// Error carries the reason.
	Available bool
	Error     string

	// Description is a one-line human-readable summary of the algorithm,
	// for rendering result tables.
	Description string

	// Recommended marks algorithms considered safe defaults for password
	// storage.
	Recommended bool
}

// algorithmDescriptions backs [BenchmarkResult.Description]. Unregistered
// custom algorithms get an empty description.
var algorithmDescriptions = map[Algorithm]string{
	PBKDF2SHA256: "PBKDF2 with HMAC-SHA256 (compute-bound, FIPS-friendly)",
	PBKDF2SHA512: "PBKDF2 with HMAC-SHA512 (compute-bound, FIPS-friendly)",
	Argon2i:      "Argon2i (memory-hard, side-channel resistant)",
	Argon2id:     "Argon2id (memory-hard, RFC 9106 recommended)",
	Scrypt:       "scrypt (memory-hard, widely deployed)",
	HKDFSHA256:   "HKDF-SHA256 (expand-only, for high-entropy secrets)",
}

// recommendedForPasswords marks the algorithms suggested for new designs.
// HKDF is excluded because it does not stretch weak inputs, and the PBKDF2
// variants because equal-cost Argon2 resists GPU attacks far better.
var recommendedForPasswords = map[Algorithm]bool{
	Argon2id: true,
	Argon2i:  true,
	Scrypt:   true,
}

// Benchmark measures the derivation cost of every algorithm registered with
// the Manager, using the supplied password and a fresh random salt.
// iterations selects how many timed derivations are averaged per algorithm;
// zero selects [DefaultBenchmarkIterations].
//
// An algorithm that fails to derive is reported with Available=false rather
// than aborting the whole run, so one misconfigured driver cannot hide the
// results of the rest.
func (m *Manager) Benchmark(password string, iterations int) (map[Algorithm]BenchmarkResult, error) {
	if iterations <= 0 {
		iterations = DefaultBenchmarkIterations
	}

	salt, err := GenerateSalt(DefaultSaltSize)
	if err != nil {
		return nil, err
	}

	results := make(map[Algorithm]BenchmarkResult, len(m.Algorithms()))
	for _, name := range m.Algorithms() {
		d, err := m.Driver(name)
		if err != nil {
			results[name] = BenchmarkResult{
				Algorithm:   name,
				Description: algorithmDescriptions[name],
				Error:       err.Error(),
			}
			continue
		}
		results[name] = benchmarkDeriver(d, password, salt, iterations)
	}
	return results, nil
}

func benchmarkDeriver(d Deriver, password string, salt []byte, iterations int) BenchmarkResult {
	res := BenchmarkResult{
		Algorithm:   d.Algorithm(),
		Description: algorithmDescriptions[d.Algorithm()],
		Recommended: recommendedForPasswords[d.Algorithm()],
	}

	// Warm-up run catches validation errors before any timing starts.
	if _, err := d.Derive(password, salt, benchmarkKeyLength); err != nil {
		res.Error = err.Error()
		return res
	}

	var total time.Duration
	var totalAlloc uint64
	var before, after runtime.MemStats

	for i := 0; i < iterations; i++ {
		runtime.ReadMemStats(&before)
		start := time.Now()
		_, err := d.Derive(password, salt, benchmarkKeyLength)
		elapsed := time.Since(start)
		runtime.ReadMemStats(&after)
		if err != nil {
			res.Error = err.Error()
			return res
		}

		total += elapsed
		totalAlloc += after.TotalAlloc - before.TotalAlloc
		if res.MinTime == 0 || elapsed < res.MinTime {
			res.MinTime = elapsed
		}
		if elapsed > res.MaxTime {
			res.MaxTime = elapsed
		}
	}

	res.Available = true
	res.AvgTime = total / time.Duration(iterations)
	res.AvgAllocKB = totalAlloc / uint64(iterations) / 1024
	return res
}

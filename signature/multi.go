package signature

// SignMultiple computes hex-encoded HMAC signatures of data under key for
// every algorithm in algorithms.  It fails fast on an unusable key or an
// unknown algorithm name; partial results are never returned.
func SignMultiple(data, key []byte, algorithms []Algorithm) (map[Algorithm]string, error) {
	out := make(map[Algorithm]string, len(algorithms))
	for _, algorithm := range algorithms {
		s, err := NewSigner(key, WithAlgorithm(algorithm))
		if err != nil {
			return nil, err
		}
		out[algorithm] = s.Sign(data)
	}
	return out, nil
}

// VerifyMultiple checks a set of named signatures against data and returns a
// per-algorithm result map; callers decide the pass/fail policy (require
// all, require any, ...).
//
// An entry naming an unsupported algorithm verifies as false rather than
// failing the whole call; an unusable key is a programmer error and is
// returned as such.
func VerifyMultiple(data []byte, signatures map[Algorithm]string, key []byte) (map[Algorithm]bool, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}

	out := make(map[Algorithm]bool, len(signatures))
	for algorithm, sig := range signatures {
		if !Supported(algorithm) {
			out[algorithm] = false
			continue
		}
		s, err := NewSigner(key, WithAlgorithm(algorithm))
		if err != nil {
			return nil, err
		}
		out[algorithm] = s.Verify(data, sig)
	}
	return out, nil
}

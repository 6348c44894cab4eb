package zxcvbn

// NISTConfig returns a configuration aligned with NIST SP 800-63B
// Digital Identity Guidelines, which favor length and breach/dictionary
// screening over composition rules.
//
// NIST does not mandate a minimum guess count, but recommends rejecting
// passwords that are commonly used, expected, or compromised — exactly
// what this estimator's dictionary matchers and guess count are for.
// Callers combine NISTConfig with a guess or score threshold of their
// choosing (e.g. reject anything scoring below [Medium]).
//
// Reference: NIST SP 800-63B Section 5.1.1
// https://pages.nist.gov/800-63-3/sp800-63b.html
//
// Example:
//
//	cfg := zxcvbn.NISTConfig()
//	result, _ := zxcvbn.EvaluateWithConfig("MySecret2024", nil, cfg)
//	if result.Score < zxcvbn.Medium {
//	    // reject
//	}
func NISTConfig() Config {
	return Config{
		MaxPasswordLength: 1024,
	}
}

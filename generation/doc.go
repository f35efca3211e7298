// Package generation defines the boundary to the external language-model
// collaborator and the resilience layer around it.
//
// Core pieces:
//   - Generator: the provider-agnostic single-shot generation interface;
//     concrete adapters live in the openai and anthropic subpackages
//   - FormatError: the taxonomy of malformed-output failures (decode,
//     extraction, schema validation) that are safe to resolve by reissuing
//     the same call unchanged
//   - ClassifyFailure: the pure retry/fatal decision function; anything that
//     is not a recognized format failure propagates unchanged
//   - Info / UsageInfo / Type: per-call observability metadata consumed by a
//     metrics.Recorder
//   - Attempt / Outcome: a tagged result for drivers, removing the need to
//     pattern-match on error types after the fact
//
// The package never retries on its own and never swallows an error it does
// not recognize; retry looping and backoff belong to the external driver.
package generation

// Package palisade is a security-hardened error-reporting core for
// honeypot and deception systems, where error output is treated as
// attacker-collectible intelligence.
//
// The defending side keeps complete forensic detail internally while
// everything observable externally carries zero exploitable information:
//
//   - External text is a fixed template with a session-obfuscated code;
//     operation names, details, and payloads never appear in it.
//   - Construction latency is floored and can be normalized to a target,
//     so timing cannot reveal which internal branch ran.
//   - Owned text buffers are erased on Destroy, so error values leave no
//     useful memory residue.
//
// Two error types cover the two failure postures. AgentError is the
// operational error for the agent's own subsystems. DualContextError is
// deception-native: it carries a public narrative (usually a lie shown
// to the adversary) and a separate internal narrative for SOC analysts,
// with sensitive internal content gated behind the SocAccess capability.
//
// Call obfuscate.InitSession once at process start; without it, error
// codes pass through unobfuscated and obfuscate.Active reports false.
package palisade

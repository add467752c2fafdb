// Package accuracy compares two evaluation strategies over a grid of
// arguments and summarises their relative disagreement.
//
// Built-in reports cover the quick versus precise Lanczos log-Gamma, the
// Gergő Nemes approximation versus Lanczos Gamma, and the regularized
// incomplete Gamma versus gonum's mathext.
package accuracy

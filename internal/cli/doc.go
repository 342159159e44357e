// Package cli defines the foamctl command tree. It translates flags
// and arguments into facade calls, and handles process-level concerns
// like exit codes; all dictionary work stays behind the app wiring.
package cli

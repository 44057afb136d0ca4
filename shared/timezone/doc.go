// Package timezone owns the process-wide default zone.
//
// The default zone doubles as the canonical storage zone: every persisted
// instant is normalized to it, and it is the universal fallback whenever a
// per-record display zone cannot be resolved.
//
// Usage:
//
//  1. Getting the default location:
//     loc := timezone.Default()
//
//  2. Resolving a candidate identifier with fallback:
//     loc := timezone.ResolveOrDefault("Asia/Jakarta")
//
//  3. Interpreting a zoneless database reading:
//     t = timezone.Localize(t)
//
// The default zone is configured via the APP_TIMEZONE environment variable,
// resolved exactly once on first use and read-only afterwards. Use standard
// IANA timezone database names for reliable cross-platform compatibility.
package timezone

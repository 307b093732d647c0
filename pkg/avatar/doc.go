// Package avatar resolves a displayable avatar for an identifier, usually an
// email address.
//
// Resolution is an ordered fallback chain; the first tier that produces a
// value wins:
//
//  1. Gravatar, addressed by the MD5 of the identifier. Always tried first.
//  2. The company logo of the identifier's mail domain (Clearbit), skipped
//     for large public mail hosts such as gmail.com or icloud.com.
//  3. A locally rendered image (a geometric "boring" avatar, or an
//     identicon) returned as a PNG data URL.
//  4. Options.DefaultTo.
//
// Transport failures reaching Gravatar are returned to the caller. Failures
// in later tiers are logged and fall through to the next tier.
package avatar

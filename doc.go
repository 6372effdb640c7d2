// Package aocsession acquires the Advent of Code session cookie from local
// browser profiles and exposes it as a typed, safely-printable value.
//
// This is intended for local tooling (puzzle input fetchers, submission
// helpers, test harnesses). Browser store reading is delegated to
// github.com/steipete/sweetcookie, may trigger keychain/keyring prompts, and
// should not be used in server contexts.
package aocsession

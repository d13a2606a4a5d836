// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package initdata verifies the signed launch parameters ("init data")
// that the Telegram client hands to a mini-app.
//
// Init data is an URL-encoded set of key=value pairs. One of them, hash,
// is the hex HMAC-SHA256 of the remaining pairs:
//
//	secret = HMAC_SHA256(key = "WebAppData", msg = bot_token)
//	hash   = hex(HMAC_SHA256(key = secret, msg = check_string))
//
// where check_string is every decoded pair except hash, formatted as
// key=value, sorted by key and joined with '\n'.
//
// The user pair carries a JSON object describing the signed-in user. It is
// decoded only after the signature has been checked against its exact
// received bytes.
package initdata

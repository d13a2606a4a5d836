// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package initdata

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-meet/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBotToken = "7342037359:AAHI25ES9xCOMPWYWjSb1qa5n6Ot3k_tV4M"

const testUserJSON = `{"id":279058397,"first_name":"Vladislav","last_name":"Kibenko","username":"vdkfrost","language_code":"ru","is_premium":true,"allows_write_to_pm":true}`

func testFields() Fields {
	return Fields{
		"query_id":  "AAHdF6IQAAAAAN0XohDhrOrc",
		"user":      testUserJSON,
		"auth_date": "1662771648",
	}
}

// referenceHash computes the signature without going through the package.
func referenceHash(t *testing.T, checkString string) string {
	t.Helper()

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(testBotToken))

	h := hmac.New(sha256.New, secret.Sum(nil))
	h.Write([]byte(checkString))
	return hex.EncodeToString(h.Sum(nil))
}

func TestVerify_ValidPayload(t *testing.T) {
	raw := SignedInitData(testFields(), testBotToken)
	v := NewVerifier(testBotToken)

	claim, err := v.Verify(raw)
	require.NoError(t, err)

	assert.Equal(t, models.TelegramID(279058397), claim.ID)
	require.NotNil(t, claim.Username)
	assert.Equal(t, "vdkfrost", *claim.Username)
	assert.Equal(t, "Vladislav", claim.FirstName)
	assert.Equal(t, "ru", claim.LanguageCode)
	assert.True(t, claim.IsPremium)
}

func TestSign_MatchesReferenceAlgorithm(t *testing.T) {
	fields := testFields()
	checkString := "auth_date=1662771648\nquery_id=AAHdF6IQAAAAAN0XohDhrOrc\nuser=" + testUserJSON

	assert.Equal(t, checkString, CheckString(fields))
	assert.Equal(t, referenceHash(t, checkString), Sign(fields, testBotToken))
}

func TestVerify_AnyFlippedCharacterFails(t *testing.T) {
	raw := SignedInitData(testFields(), testBotToken)
	v := NewVerifier(testBotToken)

	for i := range len(raw) {
		tampered := []byte(raw)
		tampered[i] ^= 0x01

		_, err := v.Verify(string(tampered))
		assert.Errorf(t, err, "flip at %d (%q) must fail", i, raw[i])
	}
}

func TestVerify_AnyFlippedDecodedValueFails(t *testing.T) {
	fields := testFields()
	fields[KeyHash] = Sign(fields, testBotToken)
	v := NewVerifier(testBotToken)

	for key, value := range fields {
		if key == KeyHash {
			continue
		}
		for i := range len(value) {
			tampered := Fields{}
			for k, val := range fields {
				tampered[k] = val
			}
			b := []byte(value)
			b[i] ^= 0x01
			tampered[key] = string(b)

			_, err := v.Verify(Encode(tampered))
			assert.Errorf(t, err, "flip of %s[%d] must fail", key, i)
		}
	}
}

func TestVerify_FieldOrderIndependent(t *testing.T) {
	fields := testFields()
	hash := Sign(fields, testBotToken)

	orders := [][]string{
		{"user", "auth_date", "query_id", "hash"},
		{"hash", "query_id", "user", "auth_date"},
		{"auth_date", "hash", "user", "query_id"},
	}

	v := NewVerifier(testBotToken)
	for _, order := range orders {
		parts := make([]string, 0, len(order))
		for _, k := range order {
			value := fields[k]
			if k == KeyHash {
				value = hash
			}
			parts = append(parts, k+"="+url.QueryEscape(value))
		}

		_, err := v.Verify(strings.Join(parts, "&"))
		assert.NoError(t, err, "order %v", order)
	}
}

func TestVerify_Errors(t *testing.T) {
	valid := SignedInitData(testFields(), testBotToken)
	unsigned := Encode(testFields())

	noUser := testFields()
	delete(noUser, KeyUser)

	userWithoutID := testFields()
	userWithoutID[KeyUser] = `{"first_name":"Anon"}`

	upperHash := unsigned + "&hash=" + strings.ToUpper(Sign(testFields(), testBotToken))

	userNotJSON := testFields()
	userNotJSON[KeyUser] = `{"id":`

	tests := []struct {
		name    string
		raw     string
		token   string
		wantErr error
	}{
		{"empty", "", testBotToken, ErrMalformed},
		{"missing hash", unsigned, testBotToken, ErrMissingHash},
		{"empty hash", unsigned + "&hash=", testBotToken, ErrMissingHash},
		{"wrong bot token", valid, "other:token", ErrInvalidSignature},
		{"upper case hash", upperHash, testBotToken, ErrInvalidSignature},
		{"non hex hash", unsigned + "&hash=zzzz", testBotToken, ErrInvalidSignature},
		{"bad escape", "user=%zz&hash=00", testBotToken, ErrMalformed},
		{"empty key", "=1&hash=00", testBotToken, ErrMalformed},
		{"duplicate key", valid + "&auth_date=1", testBotToken, ErrMalformed},
		{"no user", SignedInitData(noUser, testBotToken), testBotToken, ErrMalformed},
		{"user without id", SignedInitData(userWithoutID, testBotToken), testBotToken, ErrMalformed},
		{"user not json", SignedInitData(userNotJSON, testBotToken), testBotToken, ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewVerifier(tt.token).Verify(tt.raw)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVerify_SkipSignature(t *testing.T) {
	v := NewVerifier(testBotToken, WithSkipSignature(true))

	claim, err := v.Verify(Encode(testFields()))
	require.NoError(t, err)
	assert.Equal(t, models.TelegramID(279058397), claim.ID)

	_, err = v.Verify("auth_date=1")
	require.ErrorIs(t, err, ErrMalformed)
}

func TestVerify_MaxAge(t *testing.T) {
	authDate := time.Unix(1662771648, 0)

	t.Run("fresh", func(t *testing.T) {
		v := NewVerifier(testBotToken, WithMaxAge(time.Hour), WithClock(func() time.Time {
			return authDate.Add(59 * time.Minute)
		}))
		_, err := v.Verify(SignedInitData(testFields(), testBotToken))
		require.NoError(t, err)
	})

	t.Run("stale", func(t *testing.T) {
		v := NewVerifier(testBotToken, WithMaxAge(time.Hour), WithClock(func() time.Time {
			return authDate.Add(61 * time.Minute)
		}))
		_, err := v.Verify(SignedInitData(testFields(), testBotToken))
		require.ErrorIs(t, err, ErrExpired)
	})

	t.Run("no auth_date", func(t *testing.T) {
		fields := testFields()
		delete(fields, KeyAuthDate)
		v := NewVerifier(testBotToken, WithMaxAge(time.Hour))
		_, err := v.Verify(SignedInitData(fields, testBotToken))
		require.ErrorIs(t, err, ErrExpired)
	})

	t.Run("disabled", func(t *testing.T) {
		v := NewVerifier(testBotToken)
		_, err := v.Verify(SignedInitData(testFields(), testBotToken))
		require.NoError(t, err)
	})
}

func TestVerify_LargeTelegramID(t *testing.T) {
	fields := testFields()
	fields[KeyUser] = `{"id":9007199254740993,"first_name":"Big"}`

	claim, err := NewVerifier(testBotToken).Verify(SignedInitData(fields, testBotToken))
	require.NoError(t, err)
	assert.Equal(t, models.TelegramID(9007199254740993), claim.ID)
}

func TestParse(t *testing.T) {
	fields, err := Parse("a=1&&b=hello+world&c&d=%7B%22x%22%3A1%7D")
	require.NoError(t, err)

	assert.Equal(t, Fields{
		"a": "1",
		"b": "hello world",
		"c": "",
		"d": `{"x":1}`,
	}, fields)
}

func TestEncode_RoundTrip(t *testing.T) {
	fields := testFields()

	parsed, err := Parse(Encode(fields))
	require.NoError(t, err)
	assert.Equal(t, fields, parsed)
}

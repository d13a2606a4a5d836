package initdata

import (
	"maps"

	"github.com/MKhiriev/go-meet/internal/utils"
)

const secretKeySeed = "WebAppData"

// secretKey derives the signing key from a bot token.
func secretKey(botToken string) []byte {
	return utils.HMACSHA256([]byte(secretKeySeed), []byte(botToken))
}

// Sign returns the hex hash of fields for botToken.
// Any existing hash field is ignored.
func Sign(fields Fields, botToken string) string {
	return utils.HMACSHA256Hex(secretKey(botToken), []byte(CheckString(fields)))
}

// SignedInitData returns an encoded payload of fields with a valid hash
// appended, as the Telegram client would produce it.
func SignedInitData(fields Fields, botToken string) string {
	signed := maps.Clone(fields)
	delete(signed, KeyHash)
	signed[KeyHash] = Sign(signed, botToken)
	return Encode(signed)
}

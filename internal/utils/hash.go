// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// signatureSeparator splits a signed value into its payload and signature.
const signatureSeparator = "."

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// A new HMAC instance is created on each call.
//
// Example usage:
//
//	signature := utils.HashString("some data", "my-secret-key")
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

// SignValue appends an HMAC-SHA256 signature of value to it, producing
// "value.signature". value must not be empty.
//
// Used for client-side state (such as flash cookies) that the server must be
// able to trust when it comes back.
func SignValue(value, hashKey string) string {
	return value + signatureSeparator + HashString(value, hashKey)
}

// VerifySignedValue checks a string produced by [SignValue] and returns the
// original value. ok is false when the input is malformed or the signature
// does not match.
func VerifySignedValue(signed, hashKey string) (string, bool) {
	idx := strings.LastIndex(signed, signatureSeparator)
	if idx <= 0 || idx == len(signed)-1 {
		return "", false
	}

	value, signature := signed[:idx], signed[idx+1:]
	got, err := hex.DecodeString(signature)
	if err != nil {
		return "", false
	}

	if !hmac.Equal(got, hashString([]byte(value), hashKey)) {
		return "", false
	}

	return value, true
}

// hashString computes an HMAC-SHA256 digest over the given byte slice
// using the provided hash key.
func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}

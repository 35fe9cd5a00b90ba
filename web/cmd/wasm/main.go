//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"

	"xpclaim/pkg/nullifier"
)

// validateProofInputs lets the client reject a malformed tuple before a
// proof is uploaded.
// Args:
// 0: JSON array of public inputs
func validateProofInputs(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResponse("insufficient arguments")
	}

	var inputs []any
	if err := json.Unmarshal([]byte(args[0].String()), &inputs); err != nil {
		return map[string]interface{}{
			"valid": false,
			"error": string(nullifier.KindInvalidInputsArray),
		}
	}

	res := nullifier.ValidateProofInputsAny(inputs)
	if !res.Valid {
		return map[string]interface{}{
			"valid":  false,
			"error":  string(res.Error),
			"reason": res.Reason,
		}
	}

	return map[string]interface{}{
		"valid": true,
		"parsed": map[string]interface{}{
			"nullifier":     res.Parsed.Nullifier,
			"xp":            res.Parsed.XP,
			"playerAddress": res.Parsed.PlayerAddress,
			"season":        res.Parsed.Season,
		},
	}
}

func verifyNullifierFormat(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return false
	}
	return nullifier.VerifyNullifierFormat(args[0].String())
}

func createStorageKey(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResponse("args: nullifier")
	}
	return nullifier.CreateStorageKey(args[0].String())
}

func addressToDecimal(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResponse("args: address")
	}
	dec, err := nullifier.AddressToDecimal(args[0].String())
	if err != nil {
		return errorResponse(err.Error())
	}
	return dec
}

func errorResponse(msg string) map[string]interface{} {
	return map[string]interface{}{
		"error": msg,
	}
}

func main() {
	c := make(chan struct{})
	js.Global().Set("validateProofInputs", js.FuncOf(validateProofInputs))
	js.Global().Set("verifyNullifierFormat", js.FuncOf(verifyNullifierFormat))
	js.Global().Set("createStorageKey", js.FuncOf(createStorageKey))
	js.Global().Set("addressToDecimal", js.FuncOf(addressToDecimal))
	<-c
}

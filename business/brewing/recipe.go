package brewing

import (
	"errors"
	"fmt"
	"math"
	"myPotionMaker/domain"
	"strconv"
	"strings"

	"github.com/pobyzaarif/goshortcute"
)

var ErrInvalidRecipeCode = errors.New("invalid recipe code")

// selectors are base64 encoded on their own so they may contain the separator
const recipeSep = "|"

// EncodeRecipe packs a brew request into a shareable code. Decoding the code
// gives the same request back; nothing is stored.
func EncodeRecipe(req domain.BrewRequest) string {
	parts := make([]string, 0, domain.BrewSlots+1)
	for _, sel := range req.Selections {
		parts = append(parts, goshortcute.StringtoBase64Encode(sel))
	}
	parts = append(parts, strconv.FormatFloat(req.RareMult, 'g', -1, 64))
	return goshortcute.StringtoBase64Encode(strings.Join(parts, recipeSep))
}

func DecodeRecipe(code string) (domain.BrewRequest, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return domain.BrewRequest{}, ErrInvalidRecipeCode
	}

	raw, ok := decodeBase64(code)
	if !ok {
		return domain.BrewRequest{}, ErrInvalidRecipeCode
	}
	parts := strings.Split(raw, recipeSep)
	if len(parts) != domain.BrewSlots+1 {
		return domain.BrewRequest{}, ErrInvalidRecipeCode
	}

	var req domain.BrewRequest
	for i := range domain.BrewSlots {
		sel, ok := decodeBase64(parts[i])
		if !ok {
			return domain.BrewRequest{}, fmt.Errorf("%w: selection %d", ErrInvalidRecipeCode, i+1)
		}
		req.Selections[i] = sel
	}

	rareMult, err := strconv.ParseFloat(parts[domain.BrewSlots], 64)
	if err != nil {
		return domain.BrewRequest{}, fmt.Errorf("%w: rare multiplier: %v", ErrInvalidRecipeCode, err)
	}
	if math.IsNaN(rareMult) || math.IsInf(rareMult, 0) {
		return domain.BrewRequest{}, fmt.Errorf("%w: rare multiplier is not finite", ErrInvalidRecipeCode)
	}
	req.RareMult = rareMult
	return req, nil
}

// decodeBase64 reports false for text that is not canonical base64.
func decodeBase64(s string) (string, bool) {
	out := goshortcute.StringtoBase64Decode(s)
	return out, goshortcute.StringtoBase64Encode(out) == s
}

package mcpsrv

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"storymcp/internal/domain"
)

func TestWeiToIP(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("1.5", weiToIP("1500000000000000000"))
	assert.Equal("1", weiToIP("1000000000000000000"))
	assert.Equal("0.000001", weiToIP("1000000000000"))
	assert.Equal("0", weiToIP("0"))
	assert.Equal("not-a-number", weiToIP("not-a-number"))
}

func TestFormatTokenAmount(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("5", formatTokenAmount("5000000000000000000", "18"))
	assert.Equal("2.5", formatTokenAmount("2500000", "6"))
	assert.Equal("123", formatTokenAmount("123", ""))
}

func TestFormatLicenseTerms(t *testing.T) {
	assert := assert.New(t)

	terms := &domain.LicenseTerms{
		Transferable:       true,
		RoyaltyPolicy:      "0xBe54FB168b3c982b7AaE60dB6CF75Bd8447b390E",
		DefaultMintingFee:  big.NewInt(0),
		Expiration:         big.NewInt(0),
		CommercialUse:      true,
		CommercialRevShare: 15_000_000,
		DerivativesAllowed: true,
		Currency:           "0x1514000000000000000000000000000000000000",
	}
	text := formatLicenseTerms(big.NewInt(42), terms)

	assert.Contains(text, "License terms 42:")
	assert.Contains(text, "Transferable: Yes")
	assert.Contains(text, "Commercial use: Yes")
	assert.Contains(text, "Commercial revenue share: 15%")
	assert.Contains(text, "Derivatives approval: No")
}

func TestFormatTransactions(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("No transactions found.", formatTransactions(nil))

	text := formatTransactions([]domain.Transaction{{
		Hash:        "0x1",
		From:        domain.AddressParty{Hash: "0xaa"},
		To:          domain.AddressParty{Hash: "0xbb"},
		Value:       "1000000000000000000",
		Status:      "ok",
		BlockNumber: 12,
	}})
	assert.Contains(text, "0x1")
	assert.Contains(text, "Value: 1 IP")
	assert.Contains(text, "block 12")
}

func TestFormatNFTHoldings(t *testing.T) {
	assert := assert.New(t)

	text := formatNFTHoldings(&domain.NFTCollections{Items: []domain.NFTCollection{{
		Token:          domain.TokenInfo{Name: "Test Collection", Symbol: "TEST"},
		Amount:         "2",
		TokenInstances: []domain.TokenInstance{{ID: "1"}, {ID: "7"}},
	}}})
	assert.Contains(text, "Test Collection (TEST), 2 item(s): #1, #7")
}

func TestFormatInterpretation(t *testing.T) {
	assert := assert.New(t)

	noSummaries := formatInterpretation("0xdead", &domain.TransactionInterpretation{Success: true})
	assert.Contains(noSummaries, "No interpretation available")

	withSummary := formatInterpretation("0xdead", &domain.TransactionInterpretation{
		Success:   true,
		Summaries: []domain.TransactionSummary{{SummaryTemplate: "{sender} sent 1 IP"}},
	})
	assert.Contains(withSummary, "{sender} sent 1 IP")
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAnswerUnwrapsResponseEnvelope(t *testing.T) {
	out := formatAnswer(`{"response": "Karar kesinleşmiştir."}`)
	assert.Equal(t, "Karar kesinleşmiştir.", out)
}

func TestFormatAnswerKeepsMalformedJSONUntouched(t *testing.T) {
	in := `{"response": "yarım kalan`
	assert.Equal(t, in, formatAnswer(in))
}

func TestFormatAnswerCollapsesAsteriskRuns(t *testing.T) {
	out := formatAnswer("Karar ***kesin*** niteliktedir.")
	assert.Equal(t, "Karar **kesin** niteliktedir.", out)
}

func TestFormatAnswerStripsLoneAsterisks(t *testing.T) {
	out := formatAnswer("Madde *5 uygulanır, **gerekçe** saklıdır.")
	assert.Equal(t, "Madde 5 uygulanır, **gerekçe** saklıdır.", out)
}

func TestFormatAnswerReflowsNumberedHeadings(t *testing.T) {
	out := formatAnswer("Giriş. **1. GENEL DEĞERLENDİRME:** Devamı.")
	assert.Equal(t, "Giriş. \n\n**1. GENEL DEĞERLENDİRME:**\n Devamı.", out)
}

func TestFormatAnswerReflowsUppercaseHeadings(t *testing.T) {
	out := formatAnswer("Giriş. **SONUÇ:** Devamı.")
	assert.Equal(t, "Giriş. \n\n**SONUÇ:**\n Devamı.", out)
}

func TestFormatAnswerCollapsesBlankRunsAndTrims(t *testing.T) {
	out := formatAnswer("\n\nBirinci paragraf.\n\n\n\nİkinci paragraf.\n")
	assert.Equal(t, "Birinci paragraf.\n\nİkinci paragraf.", out)
}

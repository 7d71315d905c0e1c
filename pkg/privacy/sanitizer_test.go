package privacy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeNames(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "full name",
			input: "Ahmet Yılmaz",
			want:  "A**** Y*****",
		},
		{
			name:  "full name in a sentence",
			input: "Davacı Ahmet Yılmaz duruşmaya katılmadı",
			// "Davacı Ahmet" pairs first; the scan resumes after the match.
			want: "D***** A**** Yılmaz duruşmaya katılmadı",
		},
		{
			name:  "honorific pair is consumed by the full-name rule",
			input: "Ahmet Bey",
			want:  "A**** B**",
		},
		{
			name:  "titled name",
			input: "Av. Ahmet Yılmaz",
			want:  "Av. A**** Y*****",
		},
		{
			name:  "respectful address masks the honorific word itself",
			input: "Sayın Ahmet Yılmaz",
			want:  "S**** A**** Yılmaz",
		},
		{
			name:  "initialed name",
			input: "A. Yılmaz",
			want:  "A. Y*****",
		},
		{
			name:  "lowercase text untouched",
			input: "mahkeme kararı hakkında bilgi",
			want:  "mahkeme kararı hakkında bilgi",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeNames(tt.input))
		})
	}
}

func TestSanitizeEmails(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "long local part keeps first and last",
			input: "ayse.kaya@example.com",
			want:  "a*******a@example.com",
		},
		{
			name:  "two character local part",
			input: "ab@example.com",
			want:  "a*@example.com",
		},
		{
			name:  "single character local part",
			input: "a@example.com",
			want:  "a*@example.com",
		},
		{
			name:  "domain is preserved",
			input: "iletisim: mehmet@adalet.gov.tr adresine yazın",
			want:  "iletisim: m****t@adalet.gov.tr adresine yazın",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeEmails(tt.input)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSanitizePhoneNumbers(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0532 123 45 67", "0532 *** ** 67"},
		{"05321234567", "0532 *** ** 67"},
		{"+90 532 123 45 67", "+90 532 *** ** 67"},
		{"532 123 45 67", "532 *** ** 67"},
		{"telefonum 0532 123 45 67 oldu", "telefonum 0532 *** ** 67 oldu"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizePhoneNumbers(tt.input), "input %q", tt.input)
	}
}

func TestSanitizeNationalIds(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"12345678901", "123 *** *** 01"},
		{"TC kimlik no 10000000146 ile", "TC kimlik no 100 *** *** 46 ile"},
		// Shorter digit runs are not identity numbers.
		{"dosya no 1234567", "dosya no 1234567"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeNationalIds(tt.input), "input %q", tt.input)
	}
}

func TestSanitizeAddresses(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Atatürk Caddesi No: 5 34710", "A****** Caddesi No: *** 34***"},
		{"Bahar Sokak", "B**** Sokak"},
		{"Çiçek Mahallesi", "Çiçek Mahallesi"}, // no ASCII boundary before Ç, as in the source patterns
		{"No:12", "No: ***"},
		{"posta kodu 06100", "posta kodu 06***"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeAddresses(tt.input), "input %q", tt.input)
	}
}

func TestSanitizeMasksEverythingInOnePass(t *testing.T) {
	input := "Ahmet Yılmaz (ayse.kaya@example.com, 0532 123 45 67, TC 12345678901) No: 7"
	want := "A**** Y***** (a*******a@example.com, 0532 *** ** 67, TC 123 *** *** 01) No: ***"

	assert.Equal(t, want, Sanitize(input))
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"Ahmet Yılmaz'ın davası ne oldu?",
		"ayse.kaya@example.com",
		"ab@example.com",
		"0532 123 45 67",
		"+90 532 123 45 67",
		"12345678901",
		"Atatürk Caddesi No: 5 34710",
		"Sayın Ahmet Yılmaz, Av. Mehmet Kaya sizi aradı: 05321234567",
		"hiç kişisel veri içermeyen bir cümle",
		"",
	}

	for _, input := range inputs {
		once := Sanitize(input)
		twice := Sanitize(once)
		assert.Equal(t, once, twice, "input %q", input)
	}
}

func TestSanitizeRecord(t *testing.T) {
	record := map[string]interface{}{
		"basvurucu":   "Ahmet Yılmaz",
		"karar_ozeti": "ifade özgürlüğü ihlali",
		"mahkeme":     "Anayasa Mahkemesi",
		"detay": map[string]interface{}{
			"avukat": "Av. Mehmet Kaya",
			"dosya":  "2019/1234",
		},
	}

	got := SanitizeRecord(record)

	assert.Equal(t, "A**** Y*****", got["basvurucu"])
	assert.Equal(t, "ifade özgürlüğü ihlali", got["karar_ozeti"])
	assert.Equal(t, "Anayasa Mahkemesi", got["mahkeme"])

	detay := got["detay"].(map[string]interface{})
	assert.Equal(t, "Av. M***** K***", detay["avukat"])
	assert.Equal(t, "2019/1234", detay["dosya"])
}

func TestSanitizeRecordNil(t *testing.T) {
	assert.Nil(t, SanitizeRecord(nil))
}

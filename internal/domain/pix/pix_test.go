package pix

import "testing"

func TestDetect(t *testing.T) {
	cases := []struct {
		name string
		key  string
		want KeyType
		ok   bool
	}{
		{"evp uuid", "123e4567-e89b-12d3-a456-426614174000", KeyTypeEVP, true},
		{"evp uppercase", "123E4567-E89B-12D3-A456-426614174000", KeyTypeEVP, true},
		{"cpf", "11144477735", KeyTypeCPF, true},
		{"eleven digits is cpf not phone", "11999990000", KeyTypeCPF, true},
		{"cnpj", "11222333000181", KeyTypeCNPJ, true},
		{"email", "a@b.co", KeyTypeEmail, true},
		{"ten digit phone", "1199999999", KeyTypeTelefone, true},
		{"garbage", "abc", "", false},
		{"empty", "", "", false},
		{"email without tld", "a@b", "", false},
		{"twelve digits", "123456789012", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Detect(tc.key)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("Detect(%q) = (%q, %v), want (%q, %v)", tc.key, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	if !Validate("11144477735", KeyTypeCPF) {
		t.Fatalf("expected valid CPF")
	}
	if Validate("11144477735", KeyTypeCNPJ) {
		t.Fatalf("CPF must not validate as CNPJ")
	}
	if Validate("a@b.co", KeyTypeTelefone) {
		t.Fatalf("email must not validate as phone")
	}
	if Validate("x", KeyType("OUTRO")) {
		t.Fatalf("unknown kind must not validate")
	}
}

package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"checkout": map[string]any{
			"deliveryFee": 50,
		},
		"otp": map[string]any{
			"resendCooldown": "30s",
		},
		"secretKey": map[string]any{
			"session": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "CHECKOUT_DELIVERYFEE", want: "checkout.deliveryFee"},
		{envKey: "OTP_RESENDCOOLDOWN", want: "otp.resendCooldown"},
		{envKey: "SECRETKEY_SESSION", want: "secretKey.session"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyCheckoutDefaults(t *testing.T) {
	cfg := &Config{}
	applyCheckoutDefaults(cfg)

	if cfg.Checkout.FreeDeliveryThreshold != 500 {
		t.Fatalf("FreeDeliveryThreshold = %d, want 500", cfg.Checkout.FreeDeliveryThreshold)
	}
	if cfg.Checkout.DeliveryFee != 50 {
		t.Fatalf("DeliveryFee = %d, want 50", cfg.Checkout.DeliveryFee)
	}
	if cfg.Otp.CodeLength != 6 {
		t.Fatalf("CodeLength = %d, want 6", cfg.Otp.CodeLength)
	}
	if cfg.Otp.MaxAttempts <= 0 {
		t.Fatalf("MaxAttempts = %d, want positive", cfg.Otp.MaxAttempts)
	}
}

func TestApplyCheckoutDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Checkout: &CheckoutConfig{FreeDeliveryThreshold: 1000, DeliveryFee: 80},
		Otp:      &OtpConfig{CodeLength: 4, MaxAttempts: 3},
	}
	applyCheckoutDefaults(cfg)

	if cfg.Checkout.FreeDeliveryThreshold != 1000 || cfg.Checkout.DeliveryFee != 80 {
		t.Fatalf("explicit checkout values overwritten: %+v", cfg.Checkout)
	}
	if cfg.Otp.CodeLength != 4 || cfg.Otp.MaxAttempts != 3 {
		t.Fatalf("explicit otp values overwritten: %+v", cfg.Otp)
	}
}

func TestApplyCheckoutDefaults_HonorsExplicitZeros(t *testing.T) {
	// A storefront may legitimately run free delivery (fee 0) or make every
	// order qualify (threshold 0). Declaring the section pins those values.
	cfg := &Config{
		Checkout: &CheckoutConfig{FreeDeliveryThreshold: 0, DeliveryFee: 0},
	}
	applyCheckoutDefaults(cfg)

	if cfg.Checkout.FreeDeliveryThreshold != 0 {
		t.Fatalf("FreeDeliveryThreshold = %d, want 0", cfg.Checkout.FreeDeliveryThreshold)
	}
	if cfg.Checkout.DeliveryFee != 0 {
		t.Fatalf("DeliveryFee = %d, want 0", cfg.Checkout.DeliveryFee)
	}
}

func TestApplyCheckoutDefaults_RejectsNegativeValues(t *testing.T) {
	cfg := &Config{
		Checkout: &CheckoutConfig{FreeDeliveryThreshold: -1, DeliveryFee: -1},
	}
	applyCheckoutDefaults(cfg)

	if cfg.Checkout.FreeDeliveryThreshold != 500 {
		t.Fatalf("FreeDeliveryThreshold = %d, want 500", cfg.Checkout.FreeDeliveryThreshold)
	}
	if cfg.Checkout.DeliveryFee != 50 {
		t.Fatalf("DeliveryFee = %d, want 50", cfg.Checkout.DeliveryFee)
	}
}

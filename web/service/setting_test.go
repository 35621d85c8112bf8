package service

import "testing"

func TestSettingDefaults(t *testing.T) {
	initTestDB(t)
	s := SettingService{}

	port, err := s.GetPort()
	if err != nil {
		t.Fatalf("GetPort: %v", err)
	}
	if port != 5000 {
		t.Errorf("default port = %d, want 5000", port)
	}

	basePath, err := s.GetBasePath()
	if err != nil {
		t.Fatalf("GetBasePath: %v", err)
	}
	if basePath != "/" {
		t.Errorf("default base path = %q, want \"/\"", basePath)
	}

	maxAge, err := s.GetSessionMaxAge()
	if err != nil {
		t.Fatalf("GetSessionMaxAge: %v", err)
	}
	if maxAge != 60 {
		t.Errorf("default session max age = %d, want 60", maxAge)
	}
}

func TestSecretPersists(t *testing.T) {
	initTestDB(t)
	s := SettingService{}

	first, err := s.GetSecret()
	if err != nil {
		t.Fatalf("GetSecret: %v", err)
	}
	if len(first) != 32 {
		t.Errorf("secret length = %d, want 32", len(first))
	}

	second, err := s.GetSecret()
	if err != nil {
		t.Fatalf("GetSecret: %v", err)
	}
	if first != second {
		t.Error("secret changed between reads, should be persisted")
	}
}

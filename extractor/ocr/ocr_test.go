package ocr

import "testing"

func TestIsImage(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"resumen.jpg", true},
		{"resumen.JPEG", true},
		{"scan.png", true},
		{"scan.tiff", true},
		{"foto.bmp", true},
		{"resumen.pdf", false},
		{"resumen.txt", false},
		{"sin-extension", false},
	}

	for _, c := range cases {
		if got := IsImage(c.path); got != c.want {
			t.Errorf("IsImage(%q) = %v, expected %v", c.path, got, c.want)
		}
	}
}

func TestSharedReturnsStableHandle(t *testing.T) {
	primero, errPrimero := Shared()
	segundo, errSegundo := Shared()

	if primero != segundo {
		t.Error("Expected the same engine handle on repeated calls")
	}
	if (errPrimero == nil) != (errSegundo == nil) {
		t.Error("Expected a stable error outcome on repeated calls")
	}
}

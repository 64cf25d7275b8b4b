package pixel

import "testing"

func TestFormatProperties(t *testing.T) {
	cases := []struct {
		f        Format
		channels int
		depth    int
		stride   int
		wide     bool
	}{
		{L8, 1, 1, 1, false},
		{LA8, 2, 1, 2, false},
		{RGB8, 3, 1, 3, false},
		{BGR8, 3, 1, 3, false},
		{RGBA8, 4, 1, 4, false},
		{BGRA8, 4, 1, 4, false},
		{L16, 1, 2, 2, true},
		{LA16, 2, 2, 4, true},
		{RGB16, 3, 2, 6, true},
		{RGBA16, 4, 2, 8, true},
	}
	for _, c := range cases {
		if got := c.f.Channels(); got != c.channels {
			t.Errorf("%s Channels: got %d, want %d", c.f, got, c.channels)
		}
		if got := c.f.BytesPerChannel(); got != c.depth {
			t.Errorf("%s BytesPerChannel: got %d, want %d", c.f, got, c.depth)
		}
		if got := c.f.PixelStride(); got != c.stride {
			t.Errorf("%s PixelStride: got %d, want %d", c.f, got, c.stride)
		}
		if got := c.f.Wide(); got != c.wide {
			t.Errorf("%s Wide: got %v, want %v", c.f, got, c.wide)
		}
		if !c.f.Supported() {
			t.Errorf("%s not reported as supported", c.f)
		}
	}
}

func TestFormatUnknownTag(t *testing.T) {
	f := Format(200)
	if f.Supported() {
		t.Error("unknown tag reported as supported")
	}
	if f.PixelStride() != 0 {
		t.Errorf("unknown tag stride: got %d", f.PixelStride())
	}
	if f.String() != "format(200)" {
		t.Errorf("unknown tag string: got %q", f.String())
	}
}

func TestImageNRGBASharesPixels(t *testing.T) {
	m := &Image{Pix: make([]byte, 16), Width: 2, Height: 2}
	n := m.NRGBA()
	if n.Stride != 8 || n.Rect.Dx() != 2 || n.Rect.Dy() != 2 {
		t.Fatalf("bad header: stride=%d rect=%v", n.Stride, n.Rect)
	}
	n.Pix[0] = 0x5a
	if m.Pix[0] != 0x5a {
		t.Fatal("NRGBA wrap copied the pixels")
	}
}

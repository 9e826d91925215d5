package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"vietnamese diacritics", "Cách mua hàng từ Indo về VN", "cach-mua-hang-tu-indo-ve-vn"},
		{"bar d", "Đăng ký ngay", "dang-ky-ngay"},
		{"punctuation", "Hello, World!", "hello-world"},
		{"surrounding whitespace", "  A  B  ", "a-b"},
		{"digits kept", "Top 10 Tips", "top-10-tips"},
		{"already clean", "conclusion", "conclusion"},
		{"empty", "", ""},
		{"only symbols", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

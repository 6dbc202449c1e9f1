package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnake(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Username", "username"},
		{"FullName", "full_name"},
		{"HTTPCode", "http_code"},
		{"UserID", "user_id"},
		{"XMLParser", "xml_parser"},
		{"getHTTPResponse", "get_http_response"},
		{"already_snake", "already_snake"},
		{"A", "a"},
		{"AB", "ab"},
		{"ABC", "abc"},
		{"", ""},
		{"userInfo", "user_info"},
		{"PHBOrg", "phb_org"},
		{"UserIDs", "user_ids"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Snake(tt.input))
		})
	}
}

func TestPascal(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"user_info", "UserInfo"},
		{"full_name", "FullName"},
		{"user_id", "UserID"},
		{"http_code", "HTTPCode"},
		{"full-admin", "FullAdmin"},
		{"already", "Already"},
		{"a", "A"},
		{"ab", "Ab"},
		{"a_b", "AB"},
		{"xml_parser", "XMLParser"},
		{"api_url", "APIURL"},
		{"UserInfo", "UserInfo"},
		{"Int64", "Int64"},
		{"id", "ID"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Pascal(tt.input))
		})
	}
}

func TestCamel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"user_info", "userInfo"},
		{"full_name", "fullName"},
		{"user_id", "userID"},
		{"http_code", "httpCode"},
		{"full-admin", "fullAdmin"},
		{"already", "already"},
		{"a", "a"},
		{"UserInfo", "userInfo"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Camel(tt.input))
		})
	}
}

func TestReceiver(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"User", "u"},
		{"UserQuery", "uq"},
		{"[]User", "u"},
		{"*User", "u"},
		{"HTTPClient", "hc"},
		{"A", "a"},
		{"GoOn", "_go"},
		{"", "v"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Receiver(tt.input))
		})
	}
}

func TestPlural(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Code", "Codes"},
		{"Category", "Categories"},
		{"Status", "Statuses"},
		{"OrderStatus", "OrderStatuses"},
		{"HTTPCode", "HTTPCodes"},
		{"Series", "SeriesValues"}, // uncountable
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Plural(tt.input))
		})
	}
}

func TestPackageName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"example", "example"},
		{"include/base", "base"},
		{"userService", "userservice"},
		{"user-service", "userservice"},
		{"v1/2fa", "pkg2fa"},
		{"type", "pkgtype"},
		{"__", "model"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, PackageName(tt.input))
		})
	}
}

func TestAddAcronym(t *testing.T) {
	AddAcronym("grpc")
	assert.Equal(t, "GRPCClient", Pascal("grpc_client"))
	assert.Equal(t, "grpcClient", Camel("grpc_client"))
}

package validator_test

import (
	"testing"

	"github.com/Noctua76/noctua-panic-backend/pkg/validator"
)

type smsRequest struct {
	Phone   string `json:"phone" validate:"required,phone"`
	Message string `json:"message" validate:"required,notblank"`
}

func TestValidateStruct_OK(t *testing.T) {
	t.Parallel()

	for _, phone := range []string{"+306912345678", "6912345678", "+1 (202) 933-4212"} {
		if err := validator.ValidateStruct(smsRequest{Phone: phone, Message: "hi"}); err != nil {
			t.Fatalf("phone %q: unexpected err: %v", phone, err)
		}
	}
}

func TestValidateStruct_Fields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  smsRequest
		want []validator.FieldError
	}{
		{
			name: "both missing",
			req:  smsRequest{},
			want: []validator.FieldError{{Field: "phone", Tag: "required"}, {Field: "message", Tag: "required"}},
		},
		{
			name: "bad phone",
			req:  smsRequest{Phone: "call-me", Message: "x"},
			want: []validator.FieldError{{Field: "phone", Tag: "phone"}},
		},
		{
			name: "blank message",
			req:  smsRequest{Phone: "+306912345678", Message: "   "},
			want: []validator.FieldError{{Field: "message", Tag: "notblank"}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := validator.Fields(validator.ValidateStruct(tt.req))
			if len(got) != len(tt.want) {
				t.Fatalf("got %+v want %+v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("field %d: got %+v want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFields_NonValidationError(t *testing.T) {
	if got := validator.Fields(nil); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

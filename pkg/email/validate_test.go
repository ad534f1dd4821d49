package email_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mustafagenc/nitrokit/pkg/email"
)

func TestEmailData_Validate(t *testing.T) {
	t.Parallel()

	valid := func() email.EmailData {
		return email.EmailData{
			To:      []string{"user@example.com"},
			Subject: "Test Subject",
			HTML:    "<p>Test body</p>",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*email.EmailData)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid message",
			mutate: func(d *email.EmailData) {},
		},
		{
			name: "valid with text only",
			mutate: func(d *email.EmailData) {
				d.HTML = ""
				d.Text = "plain body"
			},
		},
		{
			name: "valid with cc and bcc",
			mutate: func(d *email.EmailData) {
				d.Cc = []string{"cc@example.com"}
				d.Bcc = []string{"bcc@example.com"}
			},
		},
		{
			name: "complex valid address",
			mutate: func(d *email.EmailData) {
				d.To = []string{"test.user+tag@sub.example.com"}
			},
		},
		{
			name:    "no recipients",
			mutate:  func(d *email.EmailData) { d.To = nil },
			wantErr: true,
			errMsg:  "at least one recipient is required",
		},
		{
			name:    "empty subject",
			mutate:  func(d *email.EmailData) { d.Subject = "" },
			wantErr: true,
			errMsg:  "subject is required",
		},
		{
			name:    "whitespace only subject",
			mutate:  func(d *email.EmailData) { d.Subject = "   " },
			wantErr: true,
			errMsg:  "subject is required",
		},
		{
			name: "no body",
			mutate: func(d *email.EmailData) {
				d.Text = ""
				d.HTML = ""
			},
			wantErr: true,
			errMsg:  "either text or HTML body is required",
		},
		{
			name: "whitespace only bodies",
			mutate: func(d *email.EmailData) {
				d.Text = "  "
				d.HTML = "\n"
			},
			wantErr: true,
			errMsg:  "either text or HTML body is required",
		},
		{
			name:    "invalid to address",
			mutate:  func(d *email.EmailData) { d.To = []string{"invalid-email"} },
			wantErr: true,
			errMsg:  `invalid email address "invalid-email"`,
		},
		{
			name:    "address missing domain",
			mutate:  func(d *email.EmailData) { d.To = []string{"user@"} },
			wantErr: true,
			errMsg:  `invalid email address "user@"`,
		},
		{
			name:    "address missing local part",
			mutate:  func(d *email.EmailData) { d.To = []string{"@example.com"} },
			wantErr: true,
			errMsg:  `invalid email address "@example.com"`,
		},
		{
			name:    "invalid cc address",
			mutate:  func(d *email.EmailData) { d.Cc = []string{"bad@cc"} },
			wantErr: true,
			errMsg:  `invalid email address "bad@cc"`,
		},
		{
			name:    "invalid bcc address",
			mutate:  func(d *email.EmailData) { d.Bcc = []string{"nope"} },
			wantErr: true,
			errMsg:  `invalid email address "nope"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data := valid()
			tt.mutate(&data)

			err := data.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, email.ErrInvalidParams)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

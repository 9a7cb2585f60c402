package niconico

import "github.com/dmitrijs2005/niconico/secret"

// Credentials required for NicoNico login.
//
// The env tags follow the variable names the CLI reads (MAIL_TEL, PASSWORD).
// Credentials are not validated here; empty values are sent as they are.
type Credentials struct {
	// MailTel is the email address or telephone number of the account.
	MailTel string `env:"MAIL_TEL" json:"mail_tel"`
	// Password of the account.
	Password secret.String `env:"PASSWORD" json:"password"`
}

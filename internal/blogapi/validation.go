package blogapi

import "github.com/blogview-app/blogview/internal/common"

func validateTitle(v *common.Validator, title string) {
	v.Check(common.NotBlank(title), "title", "must be provided")
	v.Check(common.MaxRunes(title, 200), "title", "must not be more than 200 characters long")
}

func validateContent(v *common.Validator, content string) {
	v.Check(common.NotBlank(content), "content", "must be provided")
}

func validateID(v *common.Validator, id string) {
	v.Check(common.NotBlank(id), "id", "must be provided")
}

func validateComment(v *common.Validator, username, text string) {
	v.Check(common.NotBlank(username), "username", "must be provided")
	v.Check(common.NotBlank(text), "text", "must be provided")
	v.Check(common.MaxRunes(text, 2000), "text", "must not be more than 2000 characters long")
}

func validateCredentials(v *common.Validator, creds Credentials) {
	v.Check(common.NotBlank(creds.Username), "username", "must be provided")
	v.Check(common.NotBlank(creds.Password), "password", "must be provided")
}

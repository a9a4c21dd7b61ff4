package email

// PreviewData is sample template data per template, used to render
// previews and in tests.
var PreviewData = map[Template]map[string]string{
	TemplateWelcome: {
		"Username": "walker",
	},
}

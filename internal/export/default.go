package export

// DefaultTemplate is the embedded export template.
// It uses {{variable}} placeholders filled from the wizard and the variation.
const DefaultTemplate = `# {{client}} – {{hook_type}}

| Field | Value |
|-------|-------|
| Industry | {{industry}} |
| Audience | {{audience}} |
| Website | {{website}} |
| Exported | {{date}} |

## Email

` + "```" + `
{{email}}
` + "```" + `

## Strategy Notes

{{strategy}}
`

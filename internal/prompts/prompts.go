// Package prompts renders the instructional prompt templates. Rendering is
// plain string substitution; the output is advisory text for the caller and
// is never evaluated.
package prompts

import (
	"fmt"
	"strings"
)

// Argument defaults.
const (
	DefaultComponentName   = "MyComponent"
	DefaultSourceFramework = "React"
)

// Argument describes one template parameter.
type Argument struct {
	Name        string
	Description string
	Required    bool
	Default     string
}

// Template is a named prompt with its parameters.
type Template struct {
	Name        string
	Description string
	Arguments   []Argument
	render      func(args map[string]string) string
}

// Render substitutes args into the template. Values are interpolated
// verbatim; an optional argument that is missing or only whitespace takes
// its default. Missing required arguments render empty.
func (t Template) Render(args map[string]string) string {
	resolved := make(map[string]string, len(t.Arguments))
	for _, a := range t.Arguments {
		v := args[a.Name]
		if strings.TrimSpace(v) == "" {
			v = a.Default
		}
		resolved[a.Name] = v
	}
	return t.render(resolved)
}

// Templates lists every prompt in the order they are advertised.
var Templates = []Template{
	{
		Name:        "symbols_component_prompt",
		Description: "Prompt template for generating a Symbols/DOMQL v3 component.",
		Arguments: []Argument{
			{Name: "description", Description: "What the component should do and look like", Required: true},
			{Name: "component_name", Description: "PascalCase export name", Default: DefaultComponentName},
		},
		render: func(a map[string]string) string { return Component(a["description"], a["component_name"]) },
	},
	{
		Name:        "symbols_migration_prompt",
		Description: "Prompt template for migrating code to Symbols/DOMQL v3.",
		Arguments: []Argument{
			{Name: "source_framework", Description: "Framework the code is written in", Default: DefaultSourceFramework},
		},
		render: func(a map[string]string) string { return Migration(a["source_framework"]) },
	},
	{
		Name:        "symbols_project_prompt",
		Description: "Prompt template for scaffolding a complete Symbols project.",
		Arguments: []Argument{
			{Name: "description", Description: "What the project is for", Required: true},
		},
		render: func(a map[string]string) string { return Project(a["description"]) },
	},
	{
		Name:        "symbols_review_prompt",
		Description: "Prompt template for reviewing Symbols/DOMQL code.",
		render:      func(map[string]string) string { return Review() },
	},
}

// Find returns the template with the given name.
func Find(name string) (Template, bool) {
	for _, t := range Templates {
		if t.Name == name {
			return t, true
		}
	}
	return Template{}, false
}

const componentTemplate = `Generate a Symbols/DOMQL v3 component with these requirements:

Component Name: %[1]s
Description: %[2]s

Follow these strict rules:
- Use DOMQL v3 syntax ONLY (extends, childExtends, flattened props, onX events)
- Components are plain objects with named exports: export const %[1]s = { ... }
- Use design-system tokens for spacing (A, B, C), colors, typography
- NO imports between files — reference components by PascalCase key name
- All folders flat — no subfolders
- Include responsive breakpoints (@mobile, @tablet) where appropriate
- Follow modern UI/UX: visual hierarchy, minimal cognitive load, confident typography

Output ONLY the JavaScript code.`

const migrationTemplate = `You are migrating %[1]s code to Symbols/DOMQL v3.

Key conversion rules for %[1]s:
- Components become plain objects (never functions)
- NO imports between project files
- All folders are flat — no subfolders
- Use extends/childExtends (v3 plural, never v2 singular)
- Flatten all props directly (no props: {} wrapper)
- Events use onX prefix (no on: {} wrapper)
- Use design-system tokens for spacing/colors
- State: state: { key: val } + s.update({ key: newVal })
- Effects: onRender for mount, onStateUpdate for dependency changes
- Lists: children: (el, s) => s.items, childrenAs: 'state', childExtends: 'Item'

Provide the %[1]s code to convert and I will output clean DOMQL v3.`

const projectTemplate = `Create a complete Symbols/DOMQL v3 project:

Project Description: %s

Required structure (smbls/ folder):
- index.js (root export)
- config.js (platform config)
- vars.js (global constants)
- dependencies.js (external packages)
- components/ (PascalCase files, named exports)
- pages/ (dash-case files, camelCase exports, route mapping in index.js)
- functions/ (camelCase, called via el.call())
- designSystem/ (color, spacing, typography, theme, icons)
- state/ (default exports)

Rules:
- v3 syntax only — extends, childExtends, flattened props, onX events
- Design tokens for all spacing/colors (padding: 'A', not padding: '16px')
- Components are plain objects, never functions
- No imports between project files
- All folders completely flat

Generate all files with complete, production-ready code.`

const reviewTemplate = `Review this Symbols/DOMQL code for v3 compliance and best practices.

Check for these violations:
1. v2 syntax: extend→extends, childExtend→childExtends, props:{}, on:{}
2. Imports between project files (FORBIDDEN)
3. Function-based components (must be plain objects)
4. Subfolders (must be flat)
5. Hardcoded pixels instead of design tokens
6. Wrong event handler signatures
7. Default exports for components (should be named)

Provide:
- Issues found with line references
- Corrected code for each issue
- Overall v3 compliance score (1-10)
- Improvement suggestions

Paste your code below:`

// Component renders the component-generation prompt.
func Component(description, componentName string) string {
	return fmt.Sprintf(componentTemplate, componentName, description)
}

// Migration renders the framework-migration prompt.
func Migration(sourceFramework string) string {
	return fmt.Sprintf(migrationTemplate, sourceFramework)
}

// Project renders the project-scaffolding prompt.
func Project(description string) string {
	return fmt.Sprintf(projectTemplate, description)
}

// Review renders the code-review prompt. It takes no parameters.
func Review() string {
	return reviewTemplate
}

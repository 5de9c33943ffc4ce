// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	UnsupportedPlatformId Id = iota + 1
	ShellNotFoundId
	TemplateValidationId
	ConfigLoadFailedId
	ManifestParseId
	RepoNotFoundId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to look up the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // documentation links shown under "See also"
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 {
		extraMd += "\n\n## See also:\n"
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]\n"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	unsupportedPlatformIssue = &Issue{
		id: UnsupportedPlatformId,
		mdMsg: `
# Unsupported platform!

File logging needs a per-user data directory, and your operating system
could not be classified into a known platform family (Windows, macOS, Linux).

## Things you can try:
- Run modkit with file logging disabled (leave the app name empty)
- Run modkit on a supported operating system`,
	}

	shellNotFoundIssue = &Issue{
		id: ShellNotFoundId,
		mdMsg: `
# No shell found!

The native runner needs a system shell but could not find one.

## Search order:
1. ` + "`$SHELL`" + ` (Unix) or PowerShell / cmd (Windows)
2. ` + "`bash`" + ` on the PATH
3. ` + "`sh`" + ` on the PATH

## Things you can try:
- Use the built-in interpreter instead:
~~~
$ modkit run --runner virtual 'echo hi'
~~~
- Set the SHELL environment variable to a working shell`,
	}

	templateValidationIssue = &Issue{
		id: TemplateValidationId,
		mdMsg: `
# Invalid template parameters!

Positional parameters must cover every distinct placeholder in the
template, and each value must be a flat scalar (no lists inside lists).

## Example:
~~~
$ modkit log info '{pkg} at {ver}' MyModule 1.2.3
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Configuration could not be loaded!

Your config file exists but failed to parse or validate.

## Things you can try:
- Check the file for CUE syntax errors
- Compare your settings against ` + "`modkit config show`" + `
- Move the file aside to fall back to defaults`,
	}

	manifestParseIssue = &Issue{
		id: ManifestParseId,
		mdMsg: `
# Module manifest could not be parsed!

The .psd1 manifest has no recognizable ModuleVersion entry.

## Expected form:
~~~powershell
ModuleVersion = '1.2.3'
~~~`,
	}

	repoNotFoundIssue = &Issue{
		id: RepoNotFoundId,
		mdMsg: `
# Repository not registered!

The named repository does not exist in the local registry.

## Things you can try:
- List registered repositories:
~~~
$ modkit repo list
~~~
- Register it first:
~~~
$ modkit repo register --name myrepo --source https://example.test/feed
~~~`,
	}

	issues = map[Id]*Issue{
		unsupportedPlatformIssue.Id(): unsupportedPlatformIssue,
		shellNotFoundIssue.Id():       shellNotFoundIssue,
		templateValidationIssue.Id():  templateValidationIssue,
		configLoadFailedIssue.Id():    configLoadFailedIssue,
		manifestParseIssue.Id():       manifestParseIssue,
		repoNotFoundIssue.Id():        repoNotFoundIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}

package site

// pageTemplate is the Go html/template for each reference page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} · Symbols</title>
  <style>` + cssContent + `</style>
</head>
<body>
  <nav class="sidebar">
    <h2 class="project-title"><a href="/docs/">Symbols</a></h2>
    <ul>
      {{range .Nav}}<li><a href="{{.Href}}"{{if .Active}} class="active"{{end}}>{{.Title}}</a></li>
      {{end}}
    </ul>
  </nav>
  <main class="content">
    <article class="page-content">
      {{.Content}}
    </article>
  </main>
</body>
</html>`

// cssContent is the inline stylesheet for reference pages.
const cssContent = `
:root { --bg: #ffffff; --fg: #1f2328; --muted: #59636e; --border: #d1d9e0; --accent: #0969da; }
* { box-sizing: border-box; }
body { margin: 0; display: flex; font: 16px/1.6 -apple-system, "Segoe UI", Helvetica, Arial, sans-serif; color: var(--fg); background: var(--bg); }
.sidebar { width: 260px; min-height: 100vh; padding: 1.5rem 1rem; border-right: 1px solid var(--border); position: sticky; top: 0; }
.sidebar ul { list-style: none; padding: 0; margin: 0; }
.sidebar li a { display: block; padding: .3rem .5rem; border-radius: 6px; color: var(--muted); text-decoration: none; }
.sidebar li a.active, .sidebar li a:hover { background: #f6f8fa; color: var(--fg); }
.project-title a { color: var(--fg); text-decoration: none; }
.content { flex: 1; padding: 2rem 3rem; max-width: 980px; }
a { color: var(--accent); }
pre { padding: 1rem; overflow: auto; border-radius: 6px; background: #f6f8fa; }
code { font-family: ui-monospace, SFMono-Regular, Menlo, monospace; font-size: 85%; }
table { border-collapse: collapse; }
th, td { border: 1px solid var(--border); padding: .4rem .8rem; }
`

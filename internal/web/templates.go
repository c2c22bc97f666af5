package web

// layoutTemplate wraps every page with the header and theme toggle.
const layoutTemplate = `{{define "layout"}}<!DOCTYPE html>
<html lang="en"{{if .Dark}} class="dark"{{end}}>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <style>{{template "style"}}</style>
</head>
<body>
  <header class="header">
    <h1><a href="/">Where in the world?</a></h1>
    <form method="post" action="/theme">
      <input type="hidden" name="return" value="{{.Path}}">
      <button type="submit" class="toggle">{{.ToggleLabel}}</button>
    </form>
  </header>
  <main>
    {{if .List}}{{template "list" .List}}{{end}}
    {{if .Detail}}{{template "detail" .Detail}}{{end}}
  </main>
</body>
</html>{{end}}`

const listTemplate = `{{define "list"}}<form class="filters" method="get" action="/">
  <input type="search" name="q" value="{{.Search}}" placeholder="Search for a country…" aria-label="Search for a country">
  <select name="region" aria-label="Filter by Region" onchange="this.form.submit()">
    {{range .Regions}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>{{end}}
  </select>
  <noscript><button type="submit">Apply</button></noscript>
</form>
{{if .Message}}<p class="{{if .Failed}}error{{else}}muted{{end}}">{{.Message}}</p>{{end}}
<ul class="grid">
  {{range .Cards}}<li class="card">
    <a href="/country/{{.Code}}">
      <img src="{{.FlagPNG}}" alt="{{.FlagAlt}}" loading="lazy">
      <div class="card-body">
        <h2>{{.Name}}</h2>
        <p><strong>Population:</strong> {{.Population}}</p>
        <p><strong>Region:</strong> {{.Region}}</p>
        <p><strong>Capital:</strong> {{.Capital}}</p>
      </div>
    </a>
  </li>{{end}}
</ul>{{end}}`

const detailTemplate = `{{define "detail"}}<a class="button" href="/" onclick="if (history.length > 1) { history.back(); return false; }">⬅ Back</a>
{{if .Message}}<p class="{{if .Failed}}error{{else}}muted{{end}}">{{.Message}}</p>{{end}}
{{with .Country}}<div class="detail">
  <img src="{{.FlagSVG}}" alt="{{.FlagAlt}}">
  <div>
    <h2>{{.Name}}</h2>
    <ul>
      <li><strong>Population:</strong> {{.Population}}</li>
      <li><strong>Region:</strong> {{.Region}}</li>
      <li><strong>Sub Region:</strong> {{.Subregion}}</li>
      <li><strong>Capital:</strong> {{.Capital}}</li>
    </ul>
    {{if .HasBorders}}<div class="borders">
      <strong>Border Countries:</strong>
      {{range .Borders}}<a class="button small" href="/country/{{.}}">{{.}}</a>{{end}}
    </div>{{else}}<p class="muted">No border countries.</p>{{end}}
  </div>
</div>{{end}}{{end}}`

const styleTemplate = `{{define "style"}}
:root { --bg: #f8fafc; --surface: #ffffff; --text: #0f172a; --muted: #64748b; --danger: #ef4444; }
.dark { --bg: #0f172a; --surface: #1e293b; --text: #f1f5f9; --muted: #94a3b8; --danger: #f87171; }
body { margin: 0; font-family: "Nunito Sans", system-ui, sans-serif; background: var(--bg); color: var(--text); }
a { color: inherit; text-decoration: none; }
.header { display: flex; justify-content: space-between; align-items: center; padding: 1.5rem 2rem; background: var(--surface); box-shadow: 0 1px 3px rgba(0,0,0,.1); }
.header h1 { font-size: 1.25rem; margin: 0; }
.toggle, .button { background: var(--surface); color: var(--text); border: 0; border-radius: .375rem; padding: .5rem 1.25rem; box-shadow: 0 1px 3px rgba(0,0,0,.2); cursor: pointer; display: inline-block; }
.button.small { padding: .25rem .75rem; margin: .25rem; font-size: .75rem; }
main { max-width: 72rem; margin: 0 auto; padding: 2rem 1rem; }
.filters { display: flex; flex-wrap: wrap; justify-content: space-between; gap: 1rem; margin-bottom: 2rem; }
.filters input, .filters select { background: var(--surface); color: var(--text); border: 0; border-radius: .375rem; padding: .75rem 1rem; box-shadow: 0 1px 3px rgba(0,0,0,.1); }
.grid { list-style: none; padding: 0; display: grid; gap: 2.5rem; grid-template-columns: repeat(auto-fill, minmax(16rem, 1fr)); }
.card { background: var(--surface); border-radius: .375rem; overflow: hidden; box-shadow: 0 1px 3px rgba(0,0,0,.1); }
.card img { width: 100%; height: 10rem; object-fit: cover; }
.card-body { padding: 1rem 1.5rem 2rem; }
.card-body h2 { font-size: 1.1rem; }
.card-body p { margin: .25rem 0; font-size: .875rem; }
.detail { display: grid; gap: 2.5rem; grid-template-columns: repeat(auto-fit, minmax(18rem, 1fr)); margin-top: 2rem; align-items: center; }
.detail img { width: 100%; max-height: 20rem; object-fit: cover; border-radius: .375rem; }
.detail ul { list-style: none; padding: 0; }
.muted { color: var(--muted); }
.error { color: var(--danger); }
{{end}}`

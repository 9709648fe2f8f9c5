package handlers

import (
	"html/template"

	"logdash"
	"logdash/internal/models"
	"logdash/internal/render"
)

const pageTemplate = "index"

var pageFuncs = template.FuncMap{
	"control": func(v models.View, id string) models.ControlState {
		if st, ok := v.Controls[id]; ok {
			return st
		}
		return models.ControlState{Label: render.DefaultLabels[id]}
	},
	"levels": func() []string { return logdash.Levels },
}

// pageHTML is rendered server side from a View. The script calls the JSON
// API and, after each action or a newer /ws version, swaps the server
// rendered regions in place; the filter inputs are never replaced so the
// search box keeps focus while typing.
const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Log dashboard</title>
<style>
body{font-family:system-ui,sans-serif;margin:0;background:#f4f5f7;color:#222}
header{display:flex;gap:.5rem;align-items:center;padding:1rem;background:#1f2937;color:#fff}
header h1{font-size:1.1rem;margin:0 auto 0 0}
.stats{display:flex;gap:1rem;padding:1rem}
.stat{background:#fff;border-radius:6px;padding:.75rem 1rem;min-width:8rem}
.stat b{display:block;font-size:1.4rem}
.filters{display:flex;gap:.5rem;padding:0 1rem 1rem}
.banner{margin:0 1rem 1rem;padding:.5rem 1rem;background:#fde2e1;border-radius:6px}
.list{padding:0 1rem}
.card{background:#fff;border-radius:6px;padding:.75rem 1rem;margin-bottom:.5rem}
.card .meta{display:flex;gap:.75rem;font-size:.85rem;color:#555}
.badge{font-weight:600;text-transform:uppercase}
.level-error .badge{color:#b91c1c}.level-warning .badge{color:#b45309}
.level-info .badge{color:#1d4ed8}.level-debug .badge{color:#6b7280}
pre{background:#f3f4f6;padding:.5rem;overflow:auto}
.empty,.error{text-align:center;padding:2rem;color:#555}
</style>
</head>
<body data-version="{{.Version}}">
<header>
<h1>Logs <small>{{.APIBaseURL}}</small></h1>
<span id="controls">
{{with control . "refresh"}}<button data-action="refresh" {{if .Disabled}}disabled{{end}}>{{.Label}}</button>{{end}}
{{with control . "add_test"}}<button data-action="test" {{if .Disabled}}disabled{{end}}>{{.Label}}</button>{{end}}
{{with control . "clear"}}<button data-action="clear" {{if .Disabled}}disabled{{end}}>{{.Label}}</button>{{end}}
</span>
</header>
<section class="stats" id="stats">
<div class="stat"><b>{{.Stats.Total}}</b>total</div>
<div class="stat"><b>{{.Stats.Errors}}</b>errors</div>
<div class="stat"><b>{{.Stats.Warnings}}</b>warnings</div>
<div class="stat"><b>{{.Stats.LastLog}}</b>last log</div>
</section>
<form class="filters" id="filters">
<select name="level"><option value="">All levels</option>
{{$lvl := .Filters.Level}}{{range levels}}<option value="{{.}}" {{if eq . $lvl}}selected{{end}}>{{.}}</option>{{end}}
</select>
<select name="service" id="service-select">{{range .Services}}<option value="{{.Value}}" {{if .Selected}}selected{{end}}>{{.Label}}</option>{{end}}</select>
<input name="search" id="search" type="search" placeholder="Search messages" value="{{.Filters.Search}}">
</form>
<div id="banner-slot">{{if .Banner}}<div class="banner">{{.Banner}}</div>{{end}}</div>
<main class="list" id="list">
{{if eq .List "loading"}}<div class="empty">Loading logs...</div>
{{else if eq .List "error"}}<div class="error">{{.ListError}}</div>
{{else if eq .List "empty"}}<div class="empty"><h3>No logs found</h3><p>No log matches the current filters.</p></div>
{{else}}{{range .Cards}}<article class="card level-{{.Level}}">
<div class="meta"><span class="badge">{{.Level}}</span><span>{{.Absolute}}</span><span>{{.Service}}</span><span>{{.Relative}}</span></div>
<p>{{.Message}}</p>
{{if .Data}}<pre>{{.Data}}</pre>{{end}}
</article>{{end}}{{end}}
{{if .LoadMoreVisible}}{{with control . "load_more"}}<button data-action="more" {{if .Disabled}}disabled{{end}}>{{.Label}}</button>{{end}}{{end}}
</main>
<script>
(function(){
  var version = document.body.dataset.version;
  var regions = ["controls", "stats", "service-select", "banner-slot", "list"];
  function redraw(){
    return fetch("/").then(function(r){ return r.text(); }).then(function(html){
      var next = new DOMParser().parseFromString(html, "text/html");
      regions.forEach(function(id){
        var cur = document.getElementById(id), fresh = next.getElementById(id);
        if (cur && fresh) { cur.replaceWith(document.importNode(fresh, true)); }
      });
      version = next.body.dataset.version;
    });
  }
  function send(method, path, body){
    return fetch(path, {method: method, headers: {"Content-Type": "application/json"},
      body: body ? JSON.stringify(body) : undefined})
      .then(function(r){ return r.json(); })
      .then(function(res){
        (res.alerts || []).forEach(function(a){ alert(a); });
        if (res.error && res.status !== "declined") { alert(res.error); }
        return redraw();
      });
  }
  var actions = {
    refresh: function(){ return send("POST", "/api/v1/refresh"); },
    test: function(){ return send("POST", "/api/v1/logs/test"); },
    more: function(){ return send("POST", "/api/v1/logs/more"); },
    clear: function(){
      if (!confirm("Delete all logs? This cannot be undone.")) { return; }
      return send("POST", "/api/v1/logs/clear", {confirm: true});
    }
  };
  document.addEventListener("click", function(e){
    var b = e.target.closest("[data-action]");
    if (b && !b.disabled) { actions[b.dataset.action](); }
  });
  var form = document.getElementById("filters");
  function filters(){
    var f = new FormData(form);
    send("PUT", "/api/v1/filters", {level: f.get("level"), service: f.get("service"), search: f.get("search")});
  }
  var typing;
  document.getElementById("search").addEventListener("input", function(){
    clearTimeout(typing);
    typing = setTimeout(filters, 150);
  });
  form.addEventListener("change", function(e){ if (e.target.name !== "search") { filters(); } });
  form.addEventListener("submit", function(e){ e.preventDefault(); filters(); });
  var ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");
  ws.onmessage = function(e){
    var msg = JSON.parse(e.data);
    if (msg.type === "view" && String(msg.data.version) !== version) { redraw(); }
  };
})();
</script>
</body>
</html>
`

package generator

// pageTemplate is the full document. Sections appear in a fixed order:
// global behaviour, optional province outlines, per-layer bindings, the info
// registry, collapse and search behaviour, then the sidebar markup.
const pageTemplate = `<!DOCTYPE html>
<html lang="scn">
<head>
   <meta charset="UTF-8"/>
   <meta name="viewport" content="width=device-width, initial-scale=1"/>
   <title>{{.Title}}</title>
   <link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css" />
   <script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
   {{- range .Stylesheets}}
   <link rel="stylesheet" href="{{.}}" crossorigin="anonymous" />
   {{- end}}
   <style>
      html, body { height: 100%; margin: 0; }
      #map { position: absolute; top: 0; bottom: 0; left: 320px; right: 0; }
      #sidebar {
         position: absolute; top: 0; bottom: 0; left: 0; width: 320px;
         overflow-y: auto; padding: 12px; background: #fafafa;
         border-right: 1px solid #ddd; font-family: "Noto Sans", Helvetica, sans-serif;
      }
      #place-search { margin-bottom: 10px; }
      #location-list, .places-list { list-style: none; padding-left: 0; margin: 0; }
      .province-block { margin-bottom: 6px; padding-left: 8px; }
      .province-header { display: block; cursor: pointer; font-weight: 600; padding: 4px 0; }
      .province-block.expanded .province-header { text-decoration: underline; }
      .places-list { max-height: 0; overflow: hidden; transition: max-height 0.4s ease-out; }
      .place-item a { text-decoration: none; color: #222; }
      .place-item a:hover { color: #1E90FF; }
      .info-box { display: flex; flex-direction: column; padding: 4px 8px; margin: 4px 0; background: #fff; border-radius: 4px; font-size: 0.9em; }
      .info-name { font-weight: 600; }
      .info-ipa { color: #666; font-style: italic; }
      .sidebar-intro { font-size: 0.9em; margin-bottom: 10px; }
   </style>
</head>
<body>
<div id="map"></div>

<script>
   var map = L.map("map", {
      maxBounds: [[{{.Map.MinLat}}, {{.Map.MinLon}}], [{{.Map.MaxLat}}, {{.Map.MaxLon}}]],
      maxBoundsViscosity: 1.0
   }).setView([{{.Map.CenterLat}}, {{.Map.CenterLon}}], {{.Map.Zoom}});

   L.tileLayer({{.Map.TileURL}}, { attribution: {{.Map.Attribution}} }).addTo(map);

   var atlas = {
      layers: {},
      info: {},
      selected: null,
      idleOpacity: {{.Style.IdleOpacity}},
      hoverOpacity: {{.Style.HoverOpacity}},
      selectedOpacity: {{.Style.SelectedOpacity}},
      highlight: {{.Style.HighlightColor}}
   };

   function registerLayer(id, layer, color) {
      layer.originalColor = color;
      layer.selected = false;
      atlas.layers[id] = layer;
   }

   function idleStyle(layer) {
      return { fillOpacity: atlas.idleOpacity, color: layer.originalColor };
   }

   function highlightFeature(id) {
      Object.keys(atlas.layers).forEach(function (key) {
         var lyr = atlas.layers[key];
         lyr.setStyle(idleStyle(lyr));
         lyr.selected = false;
      });
      atlas.selected = null;
      var layer = atlas.layers[id];
      if (layer) {
         layer.setStyle({ fillOpacity: atlas.selectedOpacity, color: atlas.highlight });
         layer.selected = true;
         atlas.selected = id;
      }
   }

   function hoverLayer(id) {
      var layer = atlas.layers[id];
      if (layer && !layer.selected) {
         layer.setStyle({ fillOpacity: atlas.hoverOpacity, color: atlas.highlight });
      }
   }

   function unhoverLayer(id) {
      var layer = atlas.layers[id];
      if (layer && !layer.selected) {
         layer.setStyle(idleStyle(layer));
      }
   }

   function scrollSidebarTo(elem) {
      var sidebar = document.getElementById("sidebar");
      if (sidebar && elem) {
         sidebar.scrollTo({ top: elem.offsetTop - 75, behavior: "smooth" });
      }
   }

   function toggleSidebarInfo(id) {
      var info = document.getElementById("info_" + id);
      if (!info) return;
      var wasOpen = info.style.display === "block";
      document.querySelectorAll(".place-info").forEach(function (div) {
         div.style.display = "none";
      });
      if (!wasOpen) {
         info.innerHTML = atlas.info[id] || "No info available.";
         info.style.display = "block";
      }
   }

   function expandSectionForLayer(id) {
      var info = document.getElementById("info_" + id);
      if (!info) return;
      var list = info.closest(".places-list");
      if (list) {
         list.style.transition = "max-height 0.4s ease-out";
         list.style.maxHeight = list.scrollHeight + "px";
         list.classList.add("expanded");
         list.parentElement.classList.add("expanded");
      }
      setTimeout(function () { scrollSidebarTo(info); }, 400);
   }

   function selectPlace(id) {
      toggleSidebarInfo(id);
      highlightFeature(id);
      expandSectionForLayer(id);
   }
</script>
{{- if .Outlines}}
<script>
   L.geoJSON({{.Outlines}}, {
      interactive: false,
      style: { color: "#333333", weight: 2.5, fill: false }
   }).addTo(map);
</script>
{{- end}}
{{range .Layers}}
<script>
   (function () {
      var layer = L.geoJSON({{.GeoJSON}}, { style: {{.Style}} }).addTo(map);
      registerLayer({{.ID}}, layer, {{.Style.Color}});
      layer.bindTooltip({{.Tooltip}}, { sticky: true });
      layer.on("click", function () { selectPlace({{.ID}}); });
      layer.on("mouseover", function () { hoverLayer({{.ID}}); });
      layer.on("mouseout", function () { unhoverLayer({{.ID}}); });
   })();
</script>
{{- end}}

<script>
   atlas.info = {{.Info}};
</script>

<script>
   document.addEventListener("DOMContentLoaded", function () {
      document.querySelectorAll(".province-header").forEach(function (header) {
         header.addEventListener("click", function () {
            var list = header.nextElementSibling;
            var block = header.parentElement;
            if (!list) return;
            if (list.classList.contains("expanded")) {
               list.style.transition = "max-height 0.3s ease-in";
               list.style.maxHeight = "0";
               list.classList.remove("expanded");
               block.classList.remove("expanded");
            } else {
               list.style.transition = "max-height 0.4s ease-out";
               list.style.maxHeight = list.scrollHeight + "px";
               list.classList.add("expanded");
               block.classList.add("expanded");
            }
         });
      });
   });
</script>

<script>
   function normalizeQuery(s) {
      return s.normalize("NFKD")
         .replace(/[^\x00-\x7F]/g, "")
         .replace(/\([^()]*\)/g, " ")
         .replace(/[()]/g, " ")
         .replace(/\s+/g, " ")
         .trim()
         .toLowerCase();
   }

   document.addEventListener("DOMContentLoaded", function () {
      var input = document.getElementById("place-search");
      if (!input) return;
      input.addEventListener("input", function () {
         var q = normalizeQuery(input.value);
         document.querySelectorAll(".province-block").forEach(function (block) {
            var list = block.querySelector(".places-list");
            var matches = 0;
            block.querySelectorAll(".place-item").forEach(function (item) {
               var hit = q === "" || item.getAttribute("data-search").indexOf(q) !== -1;
               item.style.display = hit ? "" : "none";
               if (hit) matches++;
            });
            block.style.display = matches > 0 ? "" : "none";
            if (q !== "") {
               list.style.maxHeight = "none";
            } else {
               list.style.maxHeight = list.classList.contains("expanded") ? list.scrollHeight + "px" : "0";
            }
         });
      });
   });
</script>

<div id="sidebar">
   {{- if .Intro}}
   <div class="sidebar-intro">{{.Intro}}</div>
   {{- end}}
   <input id="place-search" class="form-control form-control-sm" type="search" placeholder="Cerca un cumuni..." autocomplete="off" />
   <ul id="location-list">
   {{- range .Provinces}}
      <li class="province-block" data-province="{{.Code}}" style="border-left: 6px solid {{.Color}};">
         <span class="province-header">{{.Name}}</span>
         <ul class="places-list">
         {{- range .Entries}}
            <li class="place-item" data-layer="{{.ID}}" data-search="{{.SearchKey}}">
               <a href="#" onclick="selectPlace({{.ID}}); return false;">{{.Label}}</a>
               <div id="info_{{.ID}}" class="place-info" style="display:none;"></div>
            </li>
         {{- end}}
         </ul>
      </li>
   {{- end}}
   </ul>
</div>
</body>
</html>
`

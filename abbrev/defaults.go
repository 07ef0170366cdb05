package abbrev

// defaultPairs is the built-in dictionary.  It is data, not behavior:
// callers can extend or override any entry with New(opts...).
func defaultPairs() []Option {
	return []Option{
		// identity
		WithPair("id", "id"),
		WithPair("nm", "name"),
		WithPair("tt", "title"),
		WithPair("ds", "description"),
		WithPair("lb", "label"),
		WithPair("al", "alias"),

		// state
		WithPair("st", "status"),
		WithPair("ac", "active"),
		WithPair("en", "enabled"),
		WithPair("vs", "visible"),
		WithPair("lk", "locked"),
		WithPair("ar", "archived"),
		WithPair("dl", "deleted"),
		WithPair("cp", "completed"),
		WithPair("pn", "pending"),

		// timestamps
		WithPair("cr", "created"),
		WithPair("up", "updated"),
		WithPair("dt", "date"),
		WithPair("tm", "time"),
		WithPair("ts", "timestamp"),
		WithPair("ex", "expires"),
		WithPair("du", "duration"),
		WithPair("yr", "year"),
		WithPair("mo", "month"),
		WithPair("dy", "day"),

		// metrics
		WithPair("ct", "count"),
		WithPair("tl", "total"),
		WithPair("am", "amount"),
		WithPair("pr", "price"),
		WithPair("qt", "quantity"),
		WithPair("rt", "rating"),
		WithPair("sc", "score"),
		WithPair("rk", "rank"),
		WithPair("pct", "percent"),
		WithPair("avg", "average"),
		WithPair("min", "minimum"),
		WithPair("max", "maximum"),

		// dimensions
		WithPair("wd", "width"),
		WithPair("ht", "height"),
		WithPair("sz", "size"),
		WithPair("len", "length"),
		WithPair("dp", "depth"),
		WithPair("wt", "weight"),

		// web
		WithPair("ur", "url"),
		WithPair("pt", "path"),
		WithPair("lnk", "link"),
		WithPair("src", "source"),
		WithPair("dst", "destination"),
		WithPair("ref", "reference"),
		WithPair("dom", "domain"),

		// contact
		WithPair("em", "email"),
		WithPair("ph", "phone"),
		WithPair("ad", "address"),
		WithPair("fn", "first_name"),
		WithPair("lnm", "last_name"),
		WithPair("cmp", "company"),

		// location
		WithPair("cy", "city"),
		WithPair("co", "country"),
		WithPair("rg", "region"),
		WithPair("zp", "zipcode"),
		WithPair("la", "latitude"),
		WithPair("lo", "longitude"),
		WithPair("loc", "location"),

		// visual
		WithPair("cl", "color"),
		WithPair("bg", "background"),
		WithPair("fg", "foreground"),
		WithPair("im", "image"),
		WithPair("ic", "icon"),
		WithPair("th", "thumbnail"),

		// relations
		WithPair("pa", "parent"),
		WithPair("ch", "children"),
		WithPair("us", "user"),
		WithPair("ow", "owner"),
		WithPair("au", "author"),
		WithPair("ed", "editor"),
		WithPair("rv", "reviewer"),
		WithPair("asg", "assignee"),
		WithPair("mb", "member"),
		WithPair("gp", "group"),
		WithPair("org", "organization"),

		// classification
		WithPair("ca", "category"),
		WithPair("tg", "tags"),
		WithPair("tp", "type"),
		WithPair("vl", "value"),
		WithPair("ky", "key"),
		WithPair("md", "mode"),
		WithPair("lv", "level"),
		WithPair("pri", "priority"),
		WithPair("vr", "version"),

		// project / workspace
		WithPair("ws", "workspace"),
		WithPair("repo", "repository"),
		WithPair("cont", "container"),
		WithPair("ci", "ci_cd"),
		WithPair("eds", "editors"),

		// commerce
		WithPair("sk", "sku"),
		WithPair("cu", "customer"),
		WithPair("sh", "shipping"),
		WithPair("pd", "paid"),
		WithPair("ord", "order"),
		WithPair("inv", "invoice"),
		WithPair("prd", "product"),
		WithPair("dsc", "discount"),
		WithPair("tx", "tax"),

		// content
		WithPair("txt", "text"),
		WithPair("msg", "message"),
		WithPair("cmt", "comment"),
		WithPair("nt", "note"),
		WithPair("sum", "summary"),
		WithPair("cnt", "content"),
		WithPair("bd", "body"),
		WithPair("hd", "header"),
		WithPair("ft", "footer"),

		// expand-only aliases: "v" reads as version, but version
		// keeps compressing to its canonical "vr"
		WithAlias("v", "version"),

		// section names
		WithSection('d', "data"),
		WithSection('u', "users"),
		WithSection('p', "products"),
		WithSection('o', "orders"),
		WithSection('i', "items"),
		WithSection('t', "tasks"),
		WithSection('e', "events"),
		WithSection('h', "hikes"),
	}
}

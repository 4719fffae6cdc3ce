package languages

// seedURLs lists curated, high-quality entry points per language.
var seedURLs = map[string][]string{
	"bg": {
		"https://bg.wikipedia.org/wiki/",
		"https://www.dnevnik.bg/",
		"https://www.24chasa.bg/",
		"https://www.dir.bg/",
		"https://www.investor.bg/",
		"https://www.capital.bg/",
	},
	"hr": {
		"https://hr.wikipedia.org/wiki/",
		"https://www.jutarnji.hr/",
		"https://www.vecernji.hr/",
		"https://www.index.hr/",
		"https://www.24sata.hr/",
		"https://www.nacional.hr/",
	},
	"cs": {
		"https://cs.wikipedia.org/wiki/",
		"https://www.novinky.cz/",
		"https://www.idnes.cz/",
		"https://www.aktualne.cz/",
		"https://www.seznamzpravy.cz/",
		"https://www.lidovky.cz/",
	},
	"da": {
		"https://da.wikipedia.org/wiki/",
		"https://www.dr.dk/",
		"https://www.tv2.dk/",
		"https://politiken.dk/",
		"https://jyllands-posten.dk/",
		"https://www.berlingske.dk/",
	},
	"nl": {
		"https://nl.wikipedia.org/wiki/",
		"https://nos.nl/",
		"https://www.nu.nl/",
		"https://www.ad.nl/",
		"https://www.telegraaf.nl/",
		"https://www.volkskrant.nl/",
	},
	"en": {
		"https://en.wikipedia.org/wiki/",
		"https://www.bbc.com/",
		"https://www.theguardian.com/",
		"https://www.reuters.com/",
		"https://www.independent.co.uk/",
		"https://www.economist.com/",
		"https://news.ycombinator.com/",
	},
	"et": {
		"https://et.wikipedia.org/wiki/",
		"https://www.err.ee/",
		"https://www.postimees.ee/",
		"https://www.delfi.ee/",
		"https://www.ohtuleht.ee/",
		"https://digi.geenius.ee/",
	},
	"fi": {
		"https://fi.wikipedia.org/wiki/",
		"https://yle.fi/",
		"https://www.hs.fi/",
		"https://www.is.fi/",
		"https://www.iltalehti.fi/",
		"https://www.ilta-sanomat.fi/",
	},
	"fr": {
		"https://fr.wikipedia.org/wiki/",
		"https://www.lemonde.fr/",
		"https://www.lefigaro.fr/",
		"https://www.liberation.fr/",
		"https://www.francetvinfo.fr/",
		"https://www.leparisien.fr/",
		"https://www.20minutes.fr/",
	},
	"de": {
		"https://de.wikipedia.org/wiki/",
		"https://www.spiegel.de/",
		"https://www.zeit.de/",
		"https://www.faz.net/",
		"https://www.sueddeutsche.de/",
		"https://www.welt.de/",
		"https://www.tagesschau.de/",
	},
	"el": {
		"https://el.wikipedia.org/wiki/",
		"https://www.kathimerini.gr/",
		"https://www.tanea.gr/",
		"https://www.protothema.gr/",
		"https://www.naftemporiki.gr/",
		"https://www.in.gr/",
	},
	"hu": {
		"https://hu.wikipedia.org/wiki/",
		"https://index.hu/",
		"https://www.origo.hu/",
		"https://24.hu/",
		"https://444.hu/",
		"https://www.portfolio.hu/",
	},
	"ga": {
		"https://ga.wikipedia.org/wiki/",
		"https://www.rte.ie/gaeilge/",
		"https://tuairisc.ie/",
		"https://www.irishtimes.com/",
		"https://www.independent.ie/",
		"https://www.thejournal.ie/",
	},
	"it": {
		"https://it.wikipedia.org/wiki/",
		"https://www.corriere.it/",
		"https://www.repubblica.it/",
		"https://www.lastampa.it/",
		"https://www.ilsole24ore.com/",
		"https://www.ansa.it/",
	},
	"lv": {
		"https://lv.wikipedia.org/wiki/",
		"https://www.delfi.lv/",
		"https://www.tvnet.lv/",
		"https://www.lsm.lv/",
		"https://www.diena.lv/",
		"https://nra.lv/",
	},
	"lt": {
		"https://lt.wikipedia.org/wiki/",
		"https://www.delfi.lt/",
		"https://www.lrt.lt/",
		"https://www.15min.lt/",
		"https://www.lrytas.lt/",
		"https://www.bernardinai.lt/",
	},
	"mt": {
		"https://mt.wikipedia.org/wiki/",
		"https://timesofmalta.com/",
		"https://www.independent.com.mt/",
		"https://www.maltatoday.com.mt/",
		"https://www.tvm.com.mt/",
		"https://www.lovinmalta.com/",
	},
	"pl": {
		"https://pl.wikipedia.org/wiki/",
		"https://www.onet.pl/",
		"https://www.wp.pl/",
		"https://www.interia.pl/",
		"https://www.gazeta.pl/",
		"https://www.tvn24.pl/",
	},
	"pt": {
		"https://pt.wikipedia.org/wiki/",
		"https://www.publico.pt/",
		"https://www.jn.pt/",
		"https://www.dn.pt/",
		"https://observador.pt/",
		"https://www.rtp.pt/",
	},
	"ro": {
		"https://ro.wikipedia.org/wiki/",
		"https://www.digi24.ro/",
		"https://www.hotnews.ro/",
		"https://www.protv.ro/",
		"https://www.gandul.ro/",
		"https://www.adevarul.ro/",
	},
	"sk": {
		"https://sk.wikipedia.org/wiki/",
		"https://www.sme.sk/",
		"https://www.aktuality.sk/",
		"https://www.pravda.sk/",
		"https://dennikn.sk/",
		"https://www.teraz.sk/",
	},
	"sl": {
		"https://sl.wikipedia.org/wiki/",
		"https://www.24ur.com/",
		"https://www.rtvslo.si/",
		"https://www.delo.si/",
		"https://www.dnevnik.si/",
		"https://www.zurnal24.si/",
	},
	"es": {
		"https://es.wikipedia.org/wiki/",
		"https://elpais.com/",
		"https://www.elmundo.es/",
		"https://www.abc.es/",
		"https://www.lavanguardia.com/",
		"https://www.20minutos.es/",
		"https://www.elconfidencial.com/",
	},
	"sv": {
		"https://sv.wikipedia.org/wiki/",
		"https://www.svt.se/",
		"https://www.aftonbladet.se/",
		"https://www.dn.se/",
		"https://www.expressen.se/",
		"https://www.svd.se/",
	},
}

// Seeds returns the seed URLs for a language code.
func Seeds(code string) []string {
	return seedURLs[code]
}

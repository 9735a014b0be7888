package tags

import (
	"slices"
	"strconv"
	"strings"
)

// id3v1Genres is the ID3v1 genre table including the Winamp extensions.
// ID3v2.3 genre frames refer to it as "(17)", later taggers as a bare "17".
var id3v1Genres = [...]string{
	"Blues", "Classic Rock", "Country", "Dance", "Disco", "Funk", "Grunge", "Hip-Hop",
	"Jazz", "Metal", "New Age", "Oldies", "Other", "Pop", "R&B", "Rap",
	"Reggae", "Rock", "Techno", "Industrial", "Alternative", "Ska", "Death Metal", "Pranks",
	"Soundtrack", "Euro-Techno", "Ambient", "Trip-Hop", "Vocal", "Jazz+Funk", "Fusion", "Trance",
	"Classical", "Instrumental", "Acid", "House", "Game", "Sound Clip", "Gospel", "Noise",
	"Alternative Rock", "Bass", "Soul", "Punk", "Space", "Meditative", "Instrumental Pop", "Instrumental Rock",
	"Ethnic", "Gothic", "Darkwave", "Techno-Industrial", "Electronic", "Pop-Folk", "Eurodance", "Dream",
	"Southern Rock", "Comedy", "Cult", "Gangsta", "Top 40", "Christian Rap", "Pop/Funk", "Jungle",
	"Native American", "Cabaret", "New Wave", "Psychedelic", "Rave", "Showtunes", "Trailer", "Lo-Fi",
	"Tribal", "Acid Punk", "Acid Jazz", "Polka", "Retro", "Musical", "Rock & Roll", "Hard Rock",
	"Folk", "Folk/Rock", "National Folk", "Swing", "Fast Fusion", "Bebop", "Latin", "Revival",
	"Celtic", "Bluegrass", "Avantgarde", "Gothic Rock", "Progressive Rock", "Psychedelic Rock", "Symphonic Rock", "Slow Rock",
	"Big Band", "Chorus", "Easy Listening", "Acoustic", "Humour", "Speech", "Chanson", "Opera",
	"Chamber Music", "Sonata", "Symphony", "Booty Bass", "Primus", "Porn Groove", "Satire", "Slow Jam",
	"Club", "Tango", "Samba", "Folklore", "Ballad", "Power Ballad", "Rhythmic Soul", "Freestyle",
	"Duet", "Punk Rock", "Drum Solo", "A Cappella", "Euro-House", "Dance Hall", "Goa", "Drum & Bass",
	"Club-House", "Hardcore", "Terror", "Indie", "BritPop", "Worldbeat", "Polsk Punk", "Beat",
	"Christian Gangsta Rap", "Heavy Metal", "Black Metal", "Crossover", "Contemporary Christian", "Christian Rock", "Merengue", "Salsa",
	"Thrash Metal", "Anime", "JPop", "Synthpop", "Abstract", "Art Rock", "Baroque", "Bhangra",
	"Big Beat", "Breakbeat", "Chillout", "Downtempo", "Dub", "EBM", "Eclectic", "Electro",
	"Electroclash", "Emo", "Experimental", "Garage", "Global", "IDM", "Illbient", "Industro-Goth",
	"Jam Band", "Krautrock", "Leftfield", "Lounge", "Math Rock", "New Romantic", "Nu-Breakz", "Post-Punk",
	"Post-Rock", "Psytrance", "Shoegaze", "Space Rock", "Trop Rock", "World Music", "Neoclassical", "Audiobook",
	"Audio Theatre", "Neue Deutsche Welle", "Podcast", "Indie Rock", "G-Funk", "Dubstep", "Garage Rock", "Psybient",
}

// genreRef returns the genre name a parenthesized or bare reference stands
// for: an ID3v1 genre number, "RX" (remix) or "CR" (cover).
func genreRef(ref string) (string, bool) {
	switch ref {
	case "RX":
		return "Remix", true
	case "CR":
		return "Cover", true
	}
	if ref == "" || strings.IndexFunc(ref, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return "", false
	}
	n, err := strconv.Atoi(ref)
	if err != nil || n >= len(id3v1Genres) {
		return "", false
	}
	return id3v1Genres[n], true
}

// expandGenre resolves the genre references of one genre segment.
// "(17)(20)" gives Rock and Alternative, "(4)Eurodisco" gives Disco and the
// refinement Eurodisco, "((Foo)" is the literal "(Foo)". A segment without
// any known reference is returned as is.
func expandGenre(segment string) []string {
	s := strings.TrimSpace(strings.Trim(segment, "\x00"))
	if name, ok := genreRef(s); ok {
		return []string{name}
	}

	var names []string
	for strings.HasPrefix(s, "(") && !strings.HasPrefix(s, "((") {
		end := strings.IndexByte(s, ')')
		if end < 0 {
			break
		}
		name, ok := genreRef(s[1:end])
		if !ok {
			break
		}
		names = append(names, name)
		s = s[end+1:]
	}
	if strings.HasPrefix(s, "((") {
		s = s[1:]
	}
	if s = strings.TrimSpace(s); s != "" && !slices.Contains(names, s) {
		names = append(names, s)
	}
	return names
}

package platform

type builtin struct {
	descriptor Descriptor
	aliases    []string
}

// Catalogue names must match muOS exactly; see the assign tables shipped with
// the firmware. Archive URLs point at No-Intro/Redump listing pages.
var builtins = []builtin{
	{
		descriptor: Descriptor{
			FolderCode:    "FC",
			ScraperID:     "nes",
			CatalogueName: "Nintendo NES - Famicom",
			Extensions:    []string{"nes"},
			BIOS:          []BIOSFile{{Name: "disksys.rom", Description: "Famicom Disk System BIOS"}},
			ArchiveURL:    "https://myrient.erista.me/files/No-Intro/Nintendo%20-%20Nintendo%20Entertainment%20System%20(Headerless)/",
		},
		aliases: []string{"NES", "Nintendo Entertainment System", "Famicom"},
	},
	{
		descriptor: Descriptor{
			FolderCode:    "SFC",
			ScraperID:     "snes",
			CatalogueName: "Nintendo SNES - SFC",
			Extensions:    []string{"sfc", "smc"},
			ArchiveURL:    "https://myrient.erista.me/files/No-Intro/Nintendo%20-%20Super%20Nintendo%20Entertainment%20System/",
		},
		aliases: []string{"SNES", "Super Nintendo", "Super Famicom"},
	},
	{
		descriptor: Descriptor{
			FolderCode:    "N64",
			ScraperID:     "n64",
			CatalogueName: "Nintendo N64",
			Extensions:    []string{"n64", "z64", "v64", "ndd"},
			ArchiveURL:    "https://myrient.erista.me/files/No-Intro/Nintendo%20-%20Nintendo%2064%20(BigEndian)/",
		},
		aliases: []string{"Nintendo 64"},
	},
	{
		descriptor: Descriptor{
			FolderCode:    "GB",
			ScraperID:     "gb",
			CatalogueName: "Nintendo Game Boy",
			Extensions:    []string{"gb"},
			BIOS:          []BIOSFile{{Name: "gb_bios.bin", Description: "Game Boy BIOS"}},
			ArchiveURL:    "https://myrient.erista.me/files/No-Intro/Nintendo%20-%20Game%20Boy/",
		},
		aliases: []string{"Game Boy"},
	},
	{
		descriptor: Descriptor{
			FolderCode:    "GBC",
			ScraperID:     "gbc",
			CatalogueName: "Nintendo Game Boy Color",
			Extensions:    []string{"gbc", "gb"},
			BIOS:          []BIOSFile{{Name: "gbc_bios.bin", Description: "Game Boy Color BIOS"}},
			ArchiveURL:    "https://myrient.erista.me/files/No-Intro/Nintendo%20-%20Game%20Boy%20Color/",
		},
		aliases: []string{"Game Boy Color"},
	},
	{
		descriptor: Descriptor{
			FolderCode:    "GBA",
			ScraperID:     "gba",
			CatalogueName: "Nintendo Game Boy Advance",
			Extensions:    []string{"gba"},
			BIOS:          []BIOSFile{{Name: "gba_bios.bin", Description: "Game Boy Advance BIOS"}},
			ArchiveURL:    "https://myrient.erista.me/files/No-Intro/Nintendo%20-%20Game%20Boy%20Advance/",
		},
		aliases: []string{"Game Boy Advance"},
	},
	{
		descriptor: Descriptor{
			FolderCode:    "MD",
			ScraperID:     "megadrive",
			CatalogueName: "Sega Mega Drive - Genesis",
			Extensions:    []string{"md", "smd", "gen", "bin", "32x", "sg"},
			BIOS:          []BIOSFile{{Name: "bios_MD.bin", Description: "Mega Drive BIOS"}},
			ArchiveURL:    "https://myrient.erista.me/files/No-Intro/Sega%20-%20Mega%20Drive%20-%20Genesis/",
		},
		aliases: []string{"Genesis", "Mega Drive", "Sega Genesis", "Sega Mega Drive"},
	},
	{
		descriptor: Descriptor{
			FolderCode:    "MS",
			ScraperID:     "mastersystem",
			CatalogueName: "Sega Master System",
			Extensions:    []string{"sms"},
			BIOS: []BIOSFile{
				{Name: "bios_E.sms", Description: "Master System Europe BIOS"},
				{Name: "bios_U.sms", Description: "Master System USA BIOS"},
				{Name: "bios_J.sms", Description: "Master System Japan BIOS"},
			},
			ArchiveURL: "https://myrient.erista.me/files/No-Intro/Sega%20-%20Master%20System%20-%20Mark%20III/",
		},
		aliases: []string{"Master System", "Sega Master System"},
	},
	{
		descriptor: Descriptor{
			FolderCode:    "GG",
			ScraperID:     "gamegear",
			CatalogueName: "Sega Game Gear",
			Extensions:    []string{"gg"},
			BIOS:          []BIOSFile{{Name: "bios.gg", Description: "Game Gear BIOS"}},
			ArchiveURL:    "https://myrient.erista.me/files/No-Intro/Sega%20-%20Game%20Gear/",
		},
		aliases: []string{"Game Gear", "Sega Game Gear"},
	},
	{
		descriptor: Descriptor{
			FolderCode:    "PS",
			ScraperID:     "psx",
			CatalogueName: "Sony PlayStation",
			Extensions:    []string{"chd", "cue", "bin", "iso", "pbp", "img", "ccd", "mdf"},
			BIOS: []BIOSFile{
				{Name: "bios_CD_U.bin", Description: "PS1 USA BIOS"},
				{Name: "bios_CD_E.bin", Description: "PS1 Europe BIOS"},
				{Name: "bios_CD_J.bin", Description: "PS1 Japan BIOS"},
				{Name: "PSXONPSP660.bin", Description: "PS1 BIOS for PSXONPSP"},
			},
			ArchiveURL: "https://myrient.erista.me/files/Redump/Sony%20-%20PlayStation/",
		},
		aliases: []string{"PlayStation", "PS1", "PSX", "Sony PlayStation"},
	},
	{
		descriptor: Descriptor{
			FolderCode:    "DC",
			ScraperID:     "dreamcast",
			CatalogueName: "Sega Dreamcast",
			Extensions:    []string{"chd", "cdi", "gdi"},
			BIOS: []BIOSFile{
				{Name: "dc_boot.bin", Description: "Dreamcast boot BIOS"},
				{Name: "dc_flash.bin", Description: "Dreamcast flash BIOS"},
			},
			ArchiveURL: "https://myrient.erista.me/files/Redump/Sega%20-%20Dreamcast/",
		},
		aliases: []string{"Dreamcast", "Sega Dreamcast"},
	},
	{
		descriptor: Descriptor{
			FolderCode:    "ARCADE",
			ScraperID:     "arcade",
			CatalogueName: "Arcade",
			Extensions:    []string{"zip"},
			// No public archive listing; arcade sets must be local.
		},
		aliases: []string{"MAME", "FBA"},
	},
	{
		descriptor: Descriptor{
			FolderCode:    "NEOGEO",
			ScraperID:     "neogeo",
			CatalogueName: "SNK Neo Geo",
			Extensions:    []string{"zip"},
			BIOS:          []BIOSFile{{Name: "neogeo.zip", Description: "Neo Geo BIOS"}},
		},
		aliases: []string{"Neo Geo", "SNK Neo Geo"},
	},
	{
		descriptor: Descriptor{
			FolderCode:    "ATARI",
			ScraperID:     "atari2600",
			CatalogueName: "Atari 2600",
			Extensions:    []string{"a26", "bin", "rom"},
			ArchiveURL:    "https://myrient.erista.me/files/No-Intro/Atari%20-%202600/",
		},
		aliases: []string{"Atari 2600"},
	},
	{
		descriptor: Descriptor{
			FolderCode:    "PCE",
			ScraperID:     "pcengine",
			CatalogueName: "NEC PC Engine",
			Extensions:    []string{"pce", "chd", "cue"},
			BIOS:          []BIOSFile{{Name: "syscard3.pce", Description: "PC Engine CD BIOS"}},
			ArchiveURL:    "https://myrient.erista.me/files/No-Intro/NEC%20-%20PC%20Engine%20-%20TurboGrafx-16/",
		},
		aliases: []string{"PC Engine", "TurboGrafx-16", "TurboGrafx 16", "PCEngine", "TurboGrafx"},
	},
	{
		descriptor: Descriptor{
			FolderCode:    "NGP",
			ScraperID:     "ngp",
			CatalogueName: "SNK Neo Geo Pocket",
			Extensions:    []string{"ngp", "ngc"},
			ArchiveURL:    "https://myrient.erista.me/files/No-Intro/SNK%20-%20Neo%20Geo%20Pocket%20Color/",
		},
		aliases: []string{"Neo Geo Pocket", "Neo Geo Pocket Color"},
	},
	{
		descriptor: Descriptor{
			FolderCode:    "WS",
			ScraperID:     "wonderswan",
			CatalogueName: "Bandai WonderSwan",
			Extensions:    []string{"ws", "wsc"},
		},
		aliases: []string{"WonderSwan", "WonderSwan Color"},
	},
	{
		descriptor: Descriptor{
			FolderCode:    "PSP",
			ScraperID:     "psp",
			CatalogueName: "Sony PlayStation Portable",
			Extensions:    []string{"iso", "cso", "pbp", "chd"},
		},
		aliases: []string{"PlayStation Portable", "Sony PSP"},
	},
}

// extensionOwners resolves unambiguous ROM extensions to a folder code for
// path-based platform detection. Shared extensions (bin, iso, chd, zip) are
// deliberately absent.
var extensionOwners = map[string]string{
	"nes": "FC",
	"sfc": "SFC",
	"smc": "SFC",
	"n64": "N64",
	"z64": "N64",
	"v64": "N64",
	"ndd": "N64",
	"gb":  "GB",
	"gbc": "GBC",
	"gba": "GBA",
	"md":  "MD",
	"smd": "MD",
	"gen": "MD",
	"32x": "MD",
	"sms": "MS",
	"gg":  "GG",
	"pce": "PCE",
	"cdi": "DC",
	"gdi": "DC",
	"ngp": "NGP",
	"ngc": "NGP",
	"ws":  "WS",
	"wsc": "WS",
	"cso": "PSP",
	"a26": "ATARI",
}

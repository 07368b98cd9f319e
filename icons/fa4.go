package icons

// FontAwesome 4.7 code points. Each constant is a one-rune string.
const (
	// Web application
	Adjust              = "\uf042"
	Anchor              = "\uf13d"
	Archive             = "\uf187"
	Asterisk            = "\uf069"
	Ban                 = "\uf05e"
	BarChart            = "\uf080"
	Barcode             = "\uf02a"
	Bars                = "\uf0c9"
	Beer                = "\uf0fc"
	Bell                = "\uf0f3"
	BellO               = "\uf0a2"
	Bolt                = "\uf0e7"
	Book                = "\uf02d"
	Bookmark            = "\uf02e"
	BookmarkO           = "\uf097"
	Briefcase           = "\uf0b1"
	Bug                 = "\uf188"
	BuildingO           = "\uf0f7"
	Bullhorn            = "\uf0a1"
	Bullseye            = "\uf140"
	Calculator          = "\uf1ec"
	Calendar            = "\uf073"
	CalendarO           = "\uf133"
	Camera              = "\uf030"
	CameraRetro         = "\uf083"
	Certificate         = "\uf0a3"
	Check               = "\uf00c"
	CheckCircle         = "\uf058"
	CheckCircleO        = "\uf05d"
	CheckSquare         = "\uf14a"
	CheckSquareO        = "\uf046"
	Circle              = "\uf111"
	CircleO             = "\uf10c"
	ClockO              = "\uf017"
	Cloud               = "\uf0c2"
	CloudDownload       = "\uf0ed"
	CloudUpload         = "\uf0ee"
	Code                = "\uf121"
	CodeFork            = "\uf126"
	Coffee              = "\uf0f4"
	Cog                 = "\uf013"
	Cogs                = "\uf085"
	Comment             = "\uf075"
	CommentO            = "\uf0e5"
	Comments            = "\uf086"
	CommentsO           = "\uf0e6"
	Compass             = "\uf14e"
	CreditCard          = "\uf09d"
	Crop                = "\uf125"
	Crosshairs          = "\uf05b"
	Cutlery             = "\uf0f5"
	Database            = "\uf1c0"
	Desktop             = "\uf108"
	Download            = "\uf019"
	EllipsisH           = "\uf141"
	EllipsisV           = "\uf142"
	Envelope            = "\uf0e0"
	EnvelopeO           = "\uf003"
	Eraser              = "\uf12d"
	Exchange            = "\uf0ec"
	Exclamation         = "\uf12a"
	ExclamationCircle   = "\uf06a"
	ExclamationTriangle = "\uf071"
	ExternalLink        = "\uf08e"
	Eye                 = "\uf06e"
	EyeSlash            = "\uf070"
	Filter              = "\uf0b0"
	Fire                = "\uf06d"
	FireExtinguisher    = "\uf134"
	Flag                = "\uf024"
	FlagCheckered       = "\uf11e"
	FlagO               = "\uf11d"
	Flask               = "\uf0c3"
	Folder              = "\uf07b"
	FolderO             = "\uf114"
	FolderOpen          = "\uf07c"
	FolderOpenO         = "\uf115"
	FrownO              = "\uf119"
	Gamepad             = "\uf11b"
	Gavel               = "\uf0e3"
	Gift                = "\uf06b"
	Glass               = "\uf000"
	Globe               = "\uf0ac"
	HDDO                = "\uf0a0"
	Headphones          = "\uf025"
	Heart               = "\uf004"
	HeartO              = "\uf08a"
	History             = "\uf1da"
	Home                = "\uf015"
	Inbox               = "\uf01c"
	Info                = "\uf129"
	InfoCircle          = "\uf05a"
	Key                 = "\uf084"
	KeyboardO           = "\uf11c"
	Laptop              = "\uf109"
	Leaf                = "\uf06c"
	LemonO              = "\uf094"
	LevelDown           = "\uf149"
	LevelUp             = "\uf148"
	LightbulbO          = "\uf0eb"
	LocationArrow       = "\uf124"
	Lock                = "\uf023"
	Magic               = "\uf0d0"
	Magnet              = "\uf076"
	MapMarker           = "\uf041"
	MehO                = "\uf11a"
	Microphone          = "\uf130"
	MicrophoneSlash     = "\uf131"
	Minus               = "\uf068"
	MinusCircle         = "\uf056"
	MinusSquare         = "\uf146"
	MinusSquareO        = "\uf147"
	Mobile              = "\uf10b"
	MoonO               = "\uf186"
	Music               = "\uf001"
	PaperPlane          = "\uf1d8"
	Pencil              = "\uf040"
	PencilSquare        = "\uf14b"
	PencilSquareO       = "\uf044"
	Phone               = "\uf095"
	PictureO            = "\uf03e"
	Plane               = "\uf072"
	Plus                = "\uf067"
	PlusCircle          = "\uf055"
	PlusSquare          = "\uf0fe"
	PowerOff            = "\uf011"
	Print               = "\uf02f"
	PuzzlePiece         = "\uf12e"
	QRCode              = "\uf029"
	Question            = "\uf128"
	QuestionCircle      = "\uf059"
	QuoteLeft           = "\uf10d"
	QuoteRight          = "\uf10e"
	Random              = "\uf074"
	Refresh             = "\uf021"
	Reply               = "\uf112"
	ReplyAll            = "\uf122"
	Retweet             = "\uf079"
	Road                = "\uf018"
	Rocket              = "\uf135"
	RSS                 = "\uf09e"
	RSSSquare           = "\uf143"
	Search              = "\uf002"
	SearchMinus         = "\uf010"
	SearchPlus          = "\uf00e"
	Server              = "\uf233"
	Share               = "\uf064"
	ShareSquare         = "\uf14d"
	ShareSquareO        = "\uf045"
	Shield              = "\uf132"
	ShoppingCart        = "\uf07a"
	SignIn              = "\uf090"
	SignOut             = "\uf08b"
	Signal              = "\uf012"
	Sitemap             = "\uf0e8"
	SmileO              = "\uf118"
	Sort                = "\uf0dc"
	Spinner             = "\uf110"
	Square              = "\uf0c8"
	SquareO             = "\uf096"
	Star                = "\uf005"
	StarHalf            = "\uf089"
	StarHalfO           = "\uf123"
	StarO               = "\uf006"
	Suitcase            = "\uf0f2"
	SunO                = "\uf185"
	Tablet              = "\uf10a"
	Tachometer          = "\uf0e4"
	Tag                 = "\uf02b"
	Tags                = "\uf02c"
	Tasks               = "\uf0ae"
	Terminal            = "\uf120"
	ThumbTack           = "\uf08d"
	ThumbsODown         = "\uf088"
	ThumbsOUp           = "\uf087"
	Ticket              = "\uf145"
	Times               = "\uf00d"
	TimesCircle         = "\uf057"
	TimesCircleO        = "\uf05c"
	Tint                = "\uf043"
	Trash               = "\uf1f8"
	TrashO              = "\uf014"
	Trophy              = "\uf091"
	Truck               = "\uf0d1"
	Umbrella            = "\uf0e9"
	Unlock              = "\uf09c"
	UnlockAlt           = "\uf13e"
	Upload              = "\uf093"
	User                = "\uf007"
	Users               = "\uf0c0"
	VideoCamera         = "\uf03d"
	VolumeDown          = "\uf027"
	VolumeOff           = "\uf026"
	VolumeUp            = "\uf028"
	WiFi                = "\uf1eb"
	Wrench              = "\uf0ad"

	// Text editor
	AlignCenter  = "\uf037"
	AlignJustify = "\uf039"
	AlignLeft    = "\uf036"
	AlignRight   = "\uf038"
	Bold         = "\uf032"
	ChainBroken  = "\uf127"
	Clipboard    = "\uf0ea"
	Columns      = "\uf0db"
	FileO        = "\uf016"
	FileTextO    = "\uf0f6"
	FilesO       = "\uf0c5"
	FloppyO      = "\uf0c7"
	Font         = "\uf031"
	Indent       = "\uf03c"
	Italic       = "\uf033"
	Link         = "\uf0c1"
	List         = "\uf03a"
	ListAlt      = "\uf022"
	ListOl       = "\uf0cb"
	ListUl       = "\uf0ca"
	Outdent      = "\uf03b"
	Paperclip    = "\uf0c6"
	Repeat       = "\uf01e"
	Scissors     = "\uf0c4"
	Subscript    = "\uf12c"
	Superscript  = "\uf12b"
	Table        = "\uf0ce"
	TextHeight   = "\uf034"
	TextWidth    = "\uf035"
	Th           = "\uf00a"
	ThLarge      = "\uf009"
	ThList       = "\uf00b"
	Undo         = "\uf0e2"

	// Directional
	AngleDoubleDown    = "\uf103"
	AngleDoubleLeft    = "\uf100"
	AngleDoubleRight   = "\uf101"
	AngleDoubleUp      = "\uf102"
	AngleDown          = "\uf107"
	AngleLeft          = "\uf104"
	AngleRight         = "\uf105"
	AngleUp            = "\uf106"
	ArrowCircleODown   = "\uf01a"
	ArrowCircleOUp     = "\uf01b"
	ArrowDown          = "\uf063"
	ArrowLeft          = "\uf060"
	ArrowRight         = "\uf061"
	ArrowUp            = "\uf062"
	Arrows             = "\uf047"
	CaretDown          = "\uf0d7"
	CaretLeft          = "\uf0d9"
	CaretRight         = "\uf0da"
	CaretUp            = "\uf0d8"
	ChevronCircleDown  = "\uf13a"
	ChevronCircleLeft  = "\uf137"
	ChevronCircleRight = "\uf138"
	ChevronCircleUp    = "\uf139"
	ChevronDown        = "\uf078"
	ChevronLeft        = "\uf053"
	ChevronRight       = "\uf054"
	ChevronUp          = "\uf077"

	// Media player
	Backward     = "\uf04a"
	Compress     = "\uf066"
	Eject        = "\uf052"
	Expand       = "\uf065"
	FastBackward = "\uf049"
	FastForward  = "\uf050"
	Forward      = "\uf04e"
	Pause        = "\uf04c"
	Play         = "\uf04b"
	PlayCircle   = "\uf144"
	PlayCircleO  = "\uf01d"
	StepBackward = "\uf048"
	StepForward  = "\uf051"
	Stop         = "\uf04d"

	// Medical
	Ambulance   = "\uf0f9"
	HSquare     = "\uf0fd"
	Heartbeat   = "\uf21e"
	HospitalO   = "\uf0f8"
	Medkit      = "\uf0fa"
	Stethoscope = "\uf0f1"
	UserMD      = "\uf0f0"
	Wheelchair  = "\uf193"

	// Brands
	Android        = "\uf17b"
	Apple          = "\uf179"
	CSS3           = "\uf13c"
	Dribbble       = "\uf17d"
	Facebook       = "\uf09a"
	GitHub         = "\uf09b"
	GitHubAlt      = "\uf113"
	GitHubSquare   = "\uf092"
	HTML5          = "\uf13b"
	LinkedIn       = "\uf0e1"
	LinkedInSquare = "\uf08c"
	Linux          = "\uf17c"
	MaxCDN         = "\uf136"
	Skype          = "\uf17e"
	Twitter        = "\uf099"
	Windows        = "\uf17a"
)

var byName = map[string]string{
	"adjust":               Adjust,
	"align-center":         AlignCenter,
	"align-justify":        AlignJustify,
	"align-left":           AlignLeft,
	"align-right":          AlignRight,
	"ambulance":            Ambulance,
	"anchor":               Anchor,
	"android":              Android,
	"angle-double-down":    AngleDoubleDown,
	"angle-double-left":    AngleDoubleLeft,
	"angle-double-right":   AngleDoubleRight,
	"angle-double-up":      AngleDoubleUp,
	"angle-down":           AngleDown,
	"angle-left":           AngleLeft,
	"angle-right":          AngleRight,
	"angle-up":             AngleUp,
	"apple":                Apple,
	"archive":              Archive,
	"arrow-circle-o-down":  ArrowCircleODown,
	"arrow-circle-o-up":    ArrowCircleOUp,
	"arrow-down":           ArrowDown,
	"arrow-left":           ArrowLeft,
	"arrow-right":          ArrowRight,
	"arrow-up":             ArrowUp,
	"arrows":               Arrows,
	"asterisk":             Asterisk,
	"backward":             Backward,
	"ban":                  Ban,
	"bar-chart":            BarChart,
	"barcode":              Barcode,
	"bars":                 Bars,
	"beer":                 Beer,
	"bell":                 Bell,
	"bell-o":               BellO,
	"bold":                 Bold,
	"bolt":                 Bolt,
	"book":                 Book,
	"bookmark":             Bookmark,
	"bookmark-o":           BookmarkO,
	"briefcase":            Briefcase,
	"bug":                  Bug,
	"building-o":           BuildingO,
	"bullhorn":             Bullhorn,
	"bullseye":             Bullseye,
	"calculator":           Calculator,
	"calendar":             Calendar,
	"calendar-o":           CalendarO,
	"camera":               Camera,
	"camera-retro":         CameraRetro,
	"caret-down":           CaretDown,
	"caret-left":           CaretLeft,
	"caret-right":          CaretRight,
	"caret-up":             CaretUp,
	"certificate":          Certificate,
	"chain-broken":         ChainBroken,
	"check":                Check,
	"check-circle":         CheckCircle,
	"check-circle-o":       CheckCircleO,
	"check-square":         CheckSquare,
	"check-square-o":       CheckSquareO,
	"chevron-circle-down":  ChevronCircleDown,
	"chevron-circle-left":  ChevronCircleLeft,
	"chevron-circle-right": ChevronCircleRight,
	"chevron-circle-up":    ChevronCircleUp,
	"chevron-down":         ChevronDown,
	"chevron-left":         ChevronLeft,
	"chevron-right":        ChevronRight,
	"chevron-up":           ChevronUp,
	"circle":               Circle,
	"circle-o":             CircleO,
	"clipboard":            Clipboard,
	"clock-o":              ClockO,
	"cloud":                Cloud,
	"cloud-download":       CloudDownload,
	"cloud-upload":         CloudUpload,
	"code":                 Code,
	"code-fork":            CodeFork,
	"coffee":               Coffee,
	"cog":                  Cog,
	"cogs":                 Cogs,
	"columns":              Columns,
	"comment":              Comment,
	"comment-o":            CommentO,
	"comments":             Comments,
	"comments-o":           CommentsO,
	"compass":              Compass,
	"compress":             Compress,
	"credit-card":          CreditCard,
	"crop":                 Crop,
	"crosshairs":           Crosshairs,
	"css3":                 CSS3,
	"cutlery":              Cutlery,
	"database":             Database,
	"desktop":              Desktop,
	"download":             Download,
	"dribbble":             Dribbble,
	"eject":                Eject,
	"ellipsis-h":           EllipsisH,
	"ellipsis-v":           EllipsisV,
	"envelope":             Envelope,
	"envelope-o":           EnvelopeO,
	"eraser":               Eraser,
	"exchange":             Exchange,
	"exclamation":          Exclamation,
	"exclamation-circle":   ExclamationCircle,
	"exclamation-triangle": ExclamationTriangle,
	"expand":               Expand,
	"external-link":        ExternalLink,
	"eye":                  Eye,
	"eye-slash":            EyeSlash,
	"facebook":             Facebook,
	"fast-backward":        FastBackward,
	"fast-forward":         FastForward,
	"file-o":               FileO,
	"file-text-o":          FileTextO,
	"files-o":              FilesO,
	"filter":               Filter,
	"fire":                 Fire,
	"fire-extinguisher":    FireExtinguisher,
	"flag":                 Flag,
	"flag-checkered":       FlagCheckered,
	"flag-o":               FlagO,
	"flask":                Flask,
	"floppy-o":             FloppyO,
	"folder":               Folder,
	"folder-o":             FolderO,
	"folder-open":          FolderOpen,
	"folder-open-o":        FolderOpenO,
	"font":                 Font,
	"forward":              Forward,
	"frown-o":              FrownO,
	"gamepad":              Gamepad,
	"gavel":                Gavel,
	"gift":                 Gift,
	"github":               GitHub,
	"github-alt":           GitHubAlt,
	"github-square":        GitHubSquare,
	"glass":                Glass,
	"globe":                Globe,
	"h-square":             HSquare,
	"hdd-o":                HDDO,
	"headphones":           Headphones,
	"heart":                Heart,
	"heart-o":              HeartO,
	"heartbeat":            Heartbeat,
	"history":              History,
	"home":                 Home,
	"hospital-o":           HospitalO,
	"html5":                HTML5,
	"inbox":                Inbox,
	"indent":               Indent,
	"info":                 Info,
	"info-circle":          InfoCircle,
	"italic":               Italic,
	"key":                  Key,
	"keyboard-o":           KeyboardO,
	"laptop":               Laptop,
	"leaf":                 Leaf,
	"lemon-o":              LemonO,
	"level-down":           LevelDown,
	"level-up":             LevelUp,
	"lightbulb-o":          LightbulbO,
	"link":                 Link,
	"linkedin":             LinkedIn,
	"linkedin-square":      LinkedInSquare,
	"linux":                Linux,
	"list":                 List,
	"list-alt":             ListAlt,
	"list-ol":              ListOl,
	"list-ul":              ListUl,
	"location-arrow":       LocationArrow,
	"lock":                 Lock,
	"magic":                Magic,
	"magnet":               Magnet,
	"map-marker":           MapMarker,
	"maxcdn":               MaxCDN,
	"medkit":               Medkit,
	"meh-o":                MehO,
	"microphone":           Microphone,
	"microphone-slash":     MicrophoneSlash,
	"minus":                Minus,
	"minus-circle":         MinusCircle,
	"minus-square":         MinusSquare,
	"minus-square-o":       MinusSquareO,
	"mobile":               Mobile,
	"moon-o":               MoonO,
	"music":                Music,
	"outdent":              Outdent,
	"paper-plane":          PaperPlane,
	"paperclip":            Paperclip,
	"pause":                Pause,
	"pencil":               Pencil,
	"pencil-square":        PencilSquare,
	"pencil-square-o":      PencilSquareO,
	"phone":                Phone,
	"picture-o":            PictureO,
	"plane":                Plane,
	"play":                 Play,
	"play-circle":          PlayCircle,
	"play-circle-o":        PlayCircleO,
	"plus":                 Plus,
	"plus-circle":          PlusCircle,
	"plus-square":          PlusSquare,
	"power-off":            PowerOff,
	"print":                Print,
	"puzzle-piece":         PuzzlePiece,
	"qrcode":               QRCode,
	"question":             Question,
	"question-circle":      QuestionCircle,
	"quote-left":           QuoteLeft,
	"quote-right":          QuoteRight,
	"random":               Random,
	"refresh":              Refresh,
	"repeat":               Repeat,
	"reply":                Reply,
	"reply-all":            ReplyAll,
	"retweet":              Retweet,
	"road":                 Road,
	"rocket":               Rocket,
	"rss":                  RSS,
	"rss-square":           RSSSquare,
	"scissors":             Scissors,
	"search":               Search,
	"search-minus":         SearchMinus,
	"search-plus":          SearchPlus,
	"server":               Server,
	"share":                Share,
	"share-square":         ShareSquare,
	"share-square-o":       ShareSquareO,
	"shield":               Shield,
	"shopping-cart":        ShoppingCart,
	"sign-in":              SignIn,
	"sign-out":             SignOut,
	"signal":               Signal,
	"sitemap":              Sitemap,
	"skype":                Skype,
	"smile-o":              SmileO,
	"sort":                 Sort,
	"spinner":              Spinner,
	"square":               Square,
	"square-o":             SquareO,
	"star":                 Star,
	"star-half":            StarHalf,
	"star-half-o":          StarHalfO,
	"star-o":               StarO,
	"step-backward":        StepBackward,
	"step-forward":         StepForward,
	"stethoscope":          Stethoscope,
	"stop":                 Stop,
	"subscript":            Subscript,
	"suitcase":             Suitcase,
	"sun-o":                SunO,
	"superscript":          Superscript,
	"table":                Table,
	"tablet":               Tablet,
	"tachometer":           Tachometer,
	"tag":                  Tag,
	"tags":                 Tags,
	"tasks":                Tasks,
	"terminal":             Terminal,
	"text-height":          TextHeight,
	"text-width":           TextWidth,
	"th":                   Th,
	"th-large":             ThLarge,
	"th-list":              ThList,
	"thumb-tack":           ThumbTack,
	"thumbs-o-down":        ThumbsODown,
	"thumbs-o-up":          ThumbsOUp,
	"ticket":               Ticket,
	"times":                Times,
	"times-circle":         TimesCircle,
	"times-circle-o":       TimesCircleO,
	"tint":                 Tint,
	"trash":                Trash,
	"trash-o":              TrashO,
	"trophy":               Trophy,
	"truck":                Truck,
	"twitter":              Twitter,
	"umbrella":             Umbrella,
	"undo":                 Undo,
	"unlock":               Unlock,
	"unlock-alt":           UnlockAlt,
	"upload":               Upload,
	"user":                 User,
	"user-md":              UserMD,
	"users":                Users,
	"video-camera":         VideoCamera,
	"volume-down":          VolumeDown,
	"volume-off":           VolumeOff,
	"volume-up":            VolumeUp,
	"wheelchair":           Wheelchair,
	"wifi":                 WiFi,
	"windows":              Windows,
	"wrench":               Wrench,
}

// aliases maps alternative FontAwesome names to canonical ones.
var aliases = map[string]string{
	"close":          "times",
	"copy":           "files-o",
	"cut":            "scissors",
	"dashboard":      "tachometer",
	"edit":           "pencil-square-o",
	"gear":           "cog",
	"gears":          "cogs",
	"group":          "users",
	"image":          "picture-o",
	"mail-reply":     "reply",
	"mail-reply-all": "reply-all",
	"mobile-phone":   "mobile",
	"navicon":        "bars",
	"paste":          "clipboard",
	"photo":          "picture-o",
	"remove":         "times",
	"reorder":        "bars",
	"rotate-left":    "undo",
	"rotate-right":   "repeat",
	"save":           "floppy-o",
	"send":           "paper-plane",
	"unlink":         "chain-broken",
	"warning":        "exclamation-triangle",
}

package i18n

var catalog = map[Locale]map[string]string{
	ZhCN: {
		"locale.name":      "简体中文",
		"nav.home":         "首页",
		"nav.about":        "关于",
		"nav.blogroll":     "友情链接",
		"home.posts":       "文章",
		"home.all":         "全部",
		"home.empty":       "暂无文章",
		"post.toc":         "目录",
		"post.related":     "相关文章",
		"post.back":        "返回首页",
		"blogroll.title":   "友情链接",
		"blogroll.intro":   "一些值得一读的朋友。",
		"error.notfound":   "页面不存在",
		"error.notfound.p": "你要找的页面已经不在这里了。",
		"error.server":     "出错了",
		"error.server.p":   "服务器遇到了问题，请稍后再试。",
		"footer.feed":      "订阅",
	},
	En: {
		"locale.name":      "English",
		"nav.home":         "Home",
		"nav.about":        "About",
		"nav.blogroll":     "Blogroll",
		"home.posts":       "Posts",
		"home.all":         "All",
		"home.empty":       "No posts yet",
		"post.toc":         "On this page",
		"post.related":     "Related posts",
		"post.back":        "Back to home",
		"blogroll.title":   "Blogroll",
		"blogroll.intro":   "Friends worth reading.",
		"error.notfound":   "Page not found",
		"error.notfound.p": "The page you are looking for is not here.",
		"error.server":     "Something went wrong",
		"error.server.p":   "The server hit a problem. Please try again later.",
		"footer.feed":      "Feed",
	},
}

package consts

// Redis / 缓存 key 前缀
const (
	UserTokenKey  = "staffly:user:token:"  // + userId
	OauthStateKey = "staffly:oauth:state:" // + state
	MenuCacheKey  = "menu:roles:"          // + 排序去重后的角色集合
)

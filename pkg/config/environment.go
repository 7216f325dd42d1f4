package config

// Select 根据排队鸭子数量选择背景和池塘贴图
//
// 纯函数：从 Tiers 第一项开始，返回第一个满足 queued > Above 的组合；
// 都不满足时返回 Default。Tiers 已在加载时校验为严格降序。
func (e EnvironmentConfig) Select(queued int) EnvironmentLook {
	for _, tier := range e.Tiers {
		if queued > tier.Above {
			return tier.EnvironmentLook
		}
	}
	return e.Default
}

// Looks 返回所有可能用到的贴图组合（Default 在前），用于预加载
func (e EnvironmentConfig) Looks() []EnvironmentLook {
	looks := make([]EnvironmentLook, 0, len(e.Tiers)+1)
	looks = append(looks, e.Default)
	for _, tier := range e.Tiers {
		looks = append(looks, tier.EnvironmentLook)
	}
	return looks
}
